package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Cache stores serialized responses keyed by string.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, val string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

const allLocationsGenerationKey = "locations:gen"

func generationKey(locationID string) string {
	return "location:" + locationID + ":gen"
}

// Version identifies the generation of the cached responses of a location.
// Invalidation moves to a new generation, so a response read from the
// database before a commit can only be written under a retired key.
type Version struct {
	All      int64
	Location int64
}

func (v Version) suffix() string {
	return fmt.Sprintf("%d.%d", v.All, v.Location)
}

func generation(ctx context.Context, c Cache, key string) int64 {
	s, ok := c.Get(ctx, key)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// CurrentVersion reads the generation of a location. Read it before loading
// the data that will be cached under it.
func CurrentVersion(ctx context.Context, c Cache, locationID string) Version {
	return Version{
		All:      generation(ctx, c, allLocationsGenerationKey),
		Location: generation(ctx, c, generationKey(locationID)),
	}
}

func LocationKey(locationID string, v Version) string {
	return "location:" + locationID + "@" + v.suffix()
}

func ReviewsKey(locationID string, v Version) string {
	return "location:" + locationID + ":reviews@" + v.suffix()
}

// InvalidateLocation retires the cached responses of a location.
func InvalidateLocation(ctx context.Context, c Cache, locationID string) error {
	old := CurrentVersion(ctx, c, locationID)
	if _, err := c.Incr(ctx, generationKey(locationID)); err != nil {
		return err
	}
	return c.Delete(ctx, LocationKey(locationID, old), ReviewsKey(locationID, old))
}

// InvalidateAllLocations retires the cached responses of every location.
// Retired entries expire with their ttl.
func InvalidateAllLocations(ctx context.Context, c Cache) error {
	_, err := c.Incr(ctx, allLocationsGenerationKey)
	return err
}

// GetJSON decodes a cached value into v. A miss or a broken entry reports false.
func GetJSON(ctx context.Context, c Cache, key string, v interface{}) bool {
	s, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(s), v) == nil
}

func SetJSON(ctx context.Context, c Cache, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(b), ttl)
}

type InMemoryCache struct {
	mu   sync.RWMutex
	data map[string]item
}

type item struct {
	val string
	exp time.Time
}

func NewInMemory() *InMemoryCache { return &InMemoryCache{data: make(map[string]item)} }

func (c *InMemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	it, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !it.exp.IsZero() && time.Now().After(it.exp) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return "", false
	}
	return it.val, true
}

func (c *InMemoryCache) Set(_ context.Context, key string, val string, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.data[key] = item{val: val, exp: exp}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.data, key)
	}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	if it, ok := c.data[key]; ok && (it.exp.IsZero() || time.Now().Before(it.exp)) {
		v, err := strconv.ParseInt(it.val, 10, 64)
		if err != nil {
			return 0, err
		}
		n = v
	}
	n++
	c.data[key] = item{val: strconv.FormatInt(n, 10)}
	return n, nil
}
