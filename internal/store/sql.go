package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SQL stores entries in a single kv_entries table. The same statements serve
// SQLite and Postgres; only the placeholder syntax differs.
type SQL struct {
	db *sql.DB

	getQuery    string
	upsertQuery string
	deleteQuery string
}

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	kv_key TEXT PRIMARY KEY,
	kv_value TEXT NOT NULL,
	updated_at BIGINT NOT NULL
);
`

func OpenSQLite(path string) (*SQL, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// go-sqlite3 serializes writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return newSQL(db, "?", "?", "?")
}

func OpenPostgres(dsn string) (*SQL, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return newSQL(db, "$1", "$2", "$3")
}

func newSQL(db *sql.DB, p1, p2, p3 string) (*SQL, error) {
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init kv schema: %w", err)
	}
	return &SQL{
		db:       db,
		getQuery: "SELECT kv_value FROM kv_entries WHERE kv_key = " + p1,
		upsertQuery: "INSERT INTO kv_entries (kv_key, kv_value, updated_at) VALUES (" + p1 + ", " + p2 + ", " + p3 + ") " +
			"ON CONFLICT (kv_key) DO UPDATE SET kv_value = excluded.kv_value, updated_at = excluded.updated_at",
		deleteQuery: "DELETE FROM kv_entries WHERE kv_key = " + p1,
	}, nil
}

func (s *SQL) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(s.getQuery, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SQL) Set(key, value string) error {
	if _, err := s.db.Exec(s.upsertQuery, key, value, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(key string) error {
	if _, err := s.db.Exec(s.deleteQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}
