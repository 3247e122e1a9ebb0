package detailcache_test

import (
	"testing"
	"time"

	"github.com/aurceive/genshin-dashboard/internal/clock"
	"github.com/aurceive/genshin-dashboard/internal/detailcache"
	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/store"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func TestCache_PutGet(t *testing.T) {
	kv := store.NewMemory()
	clk := clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := detailcache.New[string](kv, clk, time.Hour)

	if err := c.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected v, got %q ok=%v", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestCache_Expiry(t *testing.T) {
	kv := store.NewMemory()
	clk := &manualClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := detailcache.New[int](kv, clk, 24*time.Hour)

	if err := c.Put("n", 7); err != nil {
		t.Fatalf("put: %v", err)
	}
	clk.now = clk.now.Add(24*time.Hour - time.Millisecond)
	if got, ok := c.Get("n"); !ok || got != 7 {
		t.Fatalf("expected fresh entry, got %d ok=%v", got, ok)
	}
	clk.now = clk.now.Add(time.Millisecond)
	if _, ok := c.Get("n"); ok {
		t.Fatalf("expected entry to expire at ttl")
	}
}

func TestCache_CorruptEntryRemoved(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	c := detailcache.New[string](kv, clock.Real{}, 0)

	if _, ok := c.Get("bad"); ok {
		t.Fatalf("expected miss for corrupt entry")
	}
	if _, ok, _ := kv.Get("bad"); ok {
		t.Fatalf("expected corrupt entry to be deleted")
	}
}

func TestCharacterDetails_KeyLayout(t *testing.T) {
	kv := store.NewMemory()
	c := detailcache.NewCharacterDetails(kv, clock.Real{}, 0)

	d := domain.CharacterDetailData{Base: domain.CharacterBase{ID: "10000046", Name: "Hu Tao"}}
	if err := c.Put("600000001", "10000046", d); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := kv.Get("char_detail_600000001_10000046"); !ok {
		t.Fatalf("expected entry under char_detail_<uid>_<id>")
	}
	got, ok := c.Get("600000001", "10000046")
	if !ok || got.Base.Name != "Hu Tao" {
		t.Fatalf("unexpected cached detail %#v ok=%v", got, ok)
	}
	if _, ok := c.Get("700000001", "10000046"); ok {
		t.Fatalf("expected entries scoped per uid")
	}
}
