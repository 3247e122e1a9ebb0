package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/store"
)

const (
	credentialsKey = "session_credentials"
	summaryKey     = "last_summary"

	EnvLToken = "GENSHIN_DASHBOARD_LTOKEN"
	EnvLTUID  = "GENSHIN_DASHBOARD_LTUID"
)

// ErrNoCredentials means no usable ltoken/ltuid pair is available.
var ErrNoCredentials = errors.New("no session credentials (run login first)")

// Credentials are the two opaque HoYoLab session cookies.
type Credentials struct {
	LToken string `json:"ltoken"`
	LTUID  string `json:"ltuid"`
}

func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.LToken) != "" && strings.TrimSpace(c.LTUID) != ""
}

// Store persists credentials and the last-known summary in a key-value store.
type Store struct {
	kv store.Store
}

func NewStore(kv store.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load() (Credentials, error) {
	raw, ok, err := s.kv.Get(credentialsKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	if !ok {
		return Credentials{}, ErrNoCredentials
	}
	var c Credentials
	if err := json.Unmarshal([]byte(raw), &c); err != nil || !c.Valid() {
		return Credentials{}, ErrNoCredentials
	}
	return c, nil
}

func (s *Store) Save(c Credentials) error {
	c.LToken = strings.TrimSpace(c.LToken)
	c.LTUID = strings.TrimSpace(c.LTUID)
	if !c.Valid() {
		return ErrNoCredentials
	}
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.kv.Set(credentialsKey, string(b))
}

// Clear removes the credentials and the cached summary.
func (s *Store) Clear() error {
	if err := s.kv.Delete(credentialsKey); err != nil {
		return err
	}
	return s.kv.Delete(summaryKey)
}

func (s *Store) SaveSummary(sum domain.PlayerSummary) error {
	b, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	return s.kv.Set(summaryKey, string(b))
}

// LoadSummary returns ok=false when nothing usable is stored.
func (s *Store) LoadSummary() (domain.PlayerSummary, bool, error) {
	raw, ok, err := s.kv.Get(summaryKey)
	if err != nil || !ok {
		return domain.PlayerSummary{}, false, err
	}
	var sum domain.PlayerSummary
	if err := json.Unmarshal([]byte(raw), &sum); err != nil {
		return domain.PlayerSummary{}, false, nil
	}
	return sum, true, nil
}

// Resolve prefers credentials from the environment and falls back to the store.
func (s *Store) Resolve() (Credentials, error) {
	if c, ok := FromEnv(); ok {
		return c, nil
	}
	return s.Load()
}

func FromEnv() (Credentials, bool) {
	c := Credentials{
		LToken: strings.TrimSpace(os.Getenv(EnvLToken)),
		LTUID:  strings.TrimSpace(os.Getenv(EnvLTUID)),
	}
	return c, c.Valid()
}
