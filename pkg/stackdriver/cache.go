package stackdriver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// CacheEntry is a cached response body.
type CacheEntry struct {
	Body     []byte    `json:"body"`
	StoredAt time.Time `json:"stored_at"`
}

// Cache is a read cache for GET/LIST response bodies. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// memoryEntry wraps a cache entry with its expiry.
type memoryEntry struct {
	entry     *CacheEntry
	expiresAt time.Time
}

// MemoryCache is an in-process cache with a size bound. When full, the
// oldest entry is evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		maxSize: maxSize,
	}
}

const defaultCacheSize = 1000

// Get implements Cache.Get.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}

	if !cached.expiresAt.IsZero() && time.Now().After(cached.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, ErrCacheMiss
	}

	return cached.entry, nil
}

// Set implements Cache.Set.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.entries[key] = memoryEntry{entry: entry, expiresAt: expiresAt}

	return nil
}

// Delete implements Cache.Delete.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// Clear implements Cache.Clear.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()

	return nil
}

func (c *MemoryCache) evictOldestLocked() {
	oldestKey := ""
	oldestTime := time.Time{}

	for key, cached := range c.entries {
		if oldestKey == "" || cached.entry.StoredAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = cached.entry.StoredAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL (e.g. nats.DefaultURL).
	URL string
	// Bucket is the KV bucket name. Created if it does not exist.
	Bucket string
	// TTL applied at the bucket level when the bucket is created.
	TTL time.Duration
}

// NATSKVCache stores cache entries in a NATS JetStream key-value bucket so
// they can be shared across processes.
type NATSKVCache struct {
	conn   *nats.Conn
	bucket nats.KeyValue
}

// NewNATSKVCache connects to NATS and binds (or creates) the bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" || config.Bucket == "" {
		return nil, ErrNATSConfigRequired
	}

	conn, err := nats.Connect(config.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	bucket, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		bucket, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, bucket: bucket}, nil
}

// Get implements Cache.Get.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.bucket.Get(encodeCacheKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("reading cache key: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	return &entry, nil
}

// Set implements Cache.Set. Per-entry TTL is not supported by the KV bucket;
// the bucket-level TTL applies.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry, ttl time.Duration) error {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.bucket.Put(encodeCacheKey(key), encoded)
	if err != nil {
		return fmt.Errorf("writing cache key: %w", err)
	}

	return nil
}

// Delete implements Cache.Delete.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.bucket.Delete(encodeCacheKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache key: %w", err)
	}

	return nil
}

// Clear implements Cache.Clear.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.bucket.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err = c.bucket.Delete(key)
		if err != nil {
			return fmt.Errorf("deleting cache key: %w", err)
		}
	}

	return nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

// encodeCacheKey maps arbitrary request paths onto the key charset NATS KV
// accepts.
func encodeCacheKey(key string) string {
	encoded := make([]rune, 0, len(key))

	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			encoded = append(encoded, r)
		default:
			encoded = append(encoded, '_')
		}
	}

	return string(encoded)
}

// NoOpCache is a cache that does nothing (no caching).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always reports that caching is disabled.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set discards the entry.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}
