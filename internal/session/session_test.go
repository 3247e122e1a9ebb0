package session_test

import (
	"errors"
	"testing"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/session"
	"github.com/aurceive/genshin-dashboard/internal/store"
)

func TestLoad_EmptyStoreReturnsErrNoCredentials(t *testing.T) {
	s := session.NewStore(store.NewMemory())
	if _, err := s.Load(); !errors.Is(err, session.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestSaveLoadClear(t *testing.T) {
	kv := store.NewMemory()
	s := session.NewStore(kv)

	if err := s.Save(session.Credentials{LToken: " tok ", LTUID: "123"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.LToken != "tok" || c.LTUID != "123" {
		t.Fatalf("unexpected credentials %#v", c)
	}

	if err := s.SaveSummary(domain.PlayerSummary{Nickname: "Traveler", UID: "800000001"}); err != nil {
		t.Fatalf("save summary: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, session.ErrNoCredentials) {
		t.Fatalf("expected credentials to be cleared, got %v", err)
	}
	if _, ok, _ := s.LoadSummary(); ok {
		t.Fatalf("expected summary to be cleared")
	}
}

func TestSave_RejectsEmptyToken(t *testing.T) {
	s := session.NewStore(store.NewMemory())
	if err := s.Save(session.Credentials{LToken: "", LTUID: "1"}); !errors.Is(err, session.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestLoad_CorruptEntryIsTreatedAsMissing(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set("session_credentials", "not json")
	s := session.NewStore(kv)
	if _, err := s.Load(); !errors.Is(err, session.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	s := session.NewStore(store.NewMemory())
	want := domain.PlayerSummary{
		Nickname:      "Lumine",
		UID:           "600000001",
		Server:        "Asia",
		AdventureRank: 60,
		Stats:         domain.Stats{CharactersObtained: 54, Achievements: 945},
	}
	if err := s.SaveSummary(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.LoadSummary()
	if err != nil || !ok {
		t.Fatalf("expected stored summary, ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestResolve_PrefersEnvironment(t *testing.T) {
	t.Setenv(session.EnvLToken, "env-token")
	t.Setenv(session.EnvLTUID, "42")

	s := session.NewStore(store.NewMemory())
	c, err := s.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if c.LToken != "env-token" || c.LTUID != "42" {
		t.Fatalf("expected env credentials, got %#v", c)
	}
}
