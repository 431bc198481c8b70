package tts

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores synthesized audio by Key. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*Audio, error)
	Set(ctx context.Context, key string, a *Audio) error
}

// MemoryCache is a fixed-size LRU. A size of zero disables caching.
type MemoryCache struct {
	mu    sync.Mutex
	size  int
	order *list.List
	items map[string]*list.Element
}

type memoryEntry struct {
	key   string
	audio *Audio
}

func NewMemoryCache(size int) *MemoryCache {
	return &MemoryCache{
		size:  size,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*Audio, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	c.order.MoveToFront(el)
	return el.Value.(*memoryEntry).audio, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, a *Audio) error {
	if c.size <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*memoryEntry).audio = a
		c.order.MoveToFront(el)
		return nil
	}
	c.items[key] = c.order.PushFront(&memoryEntry{key: key, audio: a})
	for c.order.Len() > c.size {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*memoryEntry).key)
	}
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// RedisCache keeps audio as WAV blobs so entries are readable by other tools.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: "owl:tts:", ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Audio, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeWAV(data)
}

func (c *RedisCache) Set(ctx context.Context, key string, a *Audio) error {
	return c.client.Set(ctx, c.prefix+key, EncodeWAV(a), c.ttl).Err()
}
