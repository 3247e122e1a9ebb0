package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("expected miss for unknown key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set("a", `{"x":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("a")
	if err != nil || !ok || v != `{"x":1}` {
		t.Fatalf("expected stored value, got %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Set("a", `{"x":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get("a"); v != `{"x":2}` {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("a"); ok {
		t.Fatalf("expected key to be deleted")
	}
	if err := s.Delete("a"); err != nil {
		t.Fatalf("delete of missing key should be a no-op, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseStore(t, s)
}

func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := reopened.Get("k"); !ok || v != "v" {
		t.Fatalf("expected persisted value, got %q ok=%v", v, ok)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away, stat err=%v", err)
	}
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStore_ConcurrentDisjointKeys(t *testing.T) {
	s := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			_ = s.Set(key+"_"+string(rune('0'+i/26)), "v")
		}(i)
	}
	wg.Wait()
	if len(s.data) != 32 {
		t.Fatalf("expected 32 keys, got %d", len(s.data))
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open("redis", "", ""); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
	if _, err := Open(DriverPostgres, "", ""); err == nil {
		t.Fatalf("expected error for postgres without dsn")
	}
}
