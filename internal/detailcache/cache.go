// Package detailcache keeps normalized character details in the key-value store
// with a time-to-live.
package detailcache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aurceive/genshin-dashboard/internal/clock"
	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/store"
)

const DefaultTTL = 24 * time.Hour

type entry[V any] struct {
	TS   int64 `json:"ts"`
	Data V     `json:"data"`
}

// Cache stores values as {"ts": <unix ms>, "data": value}. Reads never fail:
// store errors and corrupt entries are logged and reported as misses.
type Cache[V any] struct {
	kv    store.Store
	clock clock.Clock
	ttl   time.Duration
}

func New[V any](kv store.Store, clk clock.Clock, ttl time.Duration) *Cache[V] {
	if clk == nil {
		clk = clock.Real{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{kv: kv, clock: clk, ttl: ttl}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	raw, ok, err := c.kv.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var e entry[V]
	if err := json.Unmarshal([]byte(raw), &e); err != nil || e.TS <= 0 {
		log.Debug().Str("key", key).Msg("dropping corrupt cache entry")
		if err := c.kv.Delete(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache delete failed")
		}
		return zero, false
	}

	age := c.clock.Now().Sub(time.UnixMilli(e.TS))
	if age >= c.ttl {
		return zero, false
	}
	return e.Data, true
}

func (c *Cache[V]) Put(key string, v V) error {
	b, err := json.Marshal(entry[V]{TS: c.clock.Now().UnixMilli(), Data: v})
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := c.kv.Set(key, string(b)); err != nil {
		return fmt.Errorf("write cache entry %s: %w", key, err)
	}
	return nil
}

// CharacterDetails is the per-account character detail cache.
type CharacterDetails struct {
	cache *Cache[domain.CharacterDetailData]
}

func NewCharacterDetails(kv store.Store, clk clock.Clock, ttl time.Duration) *CharacterDetails {
	return &CharacterDetails{cache: New[domain.CharacterDetailData](kv, clk, ttl)}
}

func Key(uid, characterID string) string {
	return "char_detail_" + uid + "_" + characterID
}

func (c *CharacterDetails) Get(uid, characterID string) (domain.CharacterDetailData, bool) {
	return c.cache.Get(Key(uid, characterID))
}

func (c *CharacterDetails) Put(uid, characterID string, d domain.CharacterDetailData) error {
	return c.cache.Put(Key(uid, characterID), d)
}
