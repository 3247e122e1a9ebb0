package store

import (
	"errors"
	"fmt"
	"strings"
)

// Store is a string key-value store. Values are JSON documents written by the
// session and cache layers; the store never inspects them.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns ok=false when the key does not exist.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Delete is a no-op for missing keys.
	Delete(key string) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var Drivers = []string{DriverMemory, DriverFile, DriverSQLite, DriverPostgres}

// Open picks an implementation by driver name. path is used by the file and
// sqlite drivers, dsn by postgres.
func Open(driver, path, dsn string) (Store, error) {
	switch strings.TrimSpace(driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile, "":
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("store: file driver needs a path")
		}
		return OpenFile(path)
	case DriverSQLite:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("store: sqlite driver needs a path")
		}
		return OpenSQLite(path)
	case DriverPostgres:
		if strings.TrimSpace(dsn) == "" {
			return nil, errors.New("store: postgres driver needs a dsn")
		}
		return OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("store: unknown driver %q (valid: %s)", driver, strings.Join(Drivers, ", "))
	}
}
