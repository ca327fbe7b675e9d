package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	TTLDefault   = 15 * time.Second
	TTLAggregate = 60 * time.Second
	TTLStatic    = 24 * time.Hour
)

var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return value, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.Client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}

// Namespace scopes keys under a per-domain prefix. Keys are case-insensitive.
// Store failures never reach the caller: reads degrade to a miss and writes
// are dropped, so the source of truth always answers.
type Namespace struct {
	store  Store
	prefix string
}

func NewNamespace(store Store, prefix string) *Namespace {
	return &Namespace{store: store, prefix: prefix}
}

func (n *Namespace) Key(key string) string {
	return strings.ToLower(n.prefix + key)
}

func (n *Namespace) GetJSON(ctx context.Context, key string, dest any) bool {
	if n == nil || n.store == nil {
		return false
	}
	raw, err := n.store.Get(ctx, n.Key(key))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Printf("[CACHE] get %s: %v", n.Key(key), err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[CACHE] decode %s: %v", n.Key(key), err)
		return false
	}
	return true
}

func (n *Namespace) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if n == nil || n.store == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[CACHE] encode %s: %v", n.Key(key), err)
		return
	}
	if err := n.store.Set(ctx, n.Key(key), raw, ttl); err != nil {
		log.Printf("[CACHE] set %s: %v", n.Key(key), err)
	}
}

func (n *Namespace) Delete(ctx context.Context, keys ...string) {
	if n == nil || n.store == nil || len(keys) == 0 {
		return
	}
	full := make([]string, 0, len(keys))
	for _, key := range keys {
		full = append(full, n.Key(key))
	}
	if err := n.store.Delete(ctx, full...); err != nil {
		log.Printf("[CACHE] delete %v: %v", full, err)
	}
}

// Fetch is the cache-aside read path: a hit is returned as-is, a miss calls
// load and stores its result under key for ttl.
func Fetch[T any](ctx context.Context, n *Namespace, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if n.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	n.SetJSON(ctx, key, value, ttl)
	return value, nil
}

// Refresh reloads key from the source and overwrites the cached copy.
func Refresh[T any](ctx context.Context, n *Namespace, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	n.SetJSON(ctx, key, value, ttl)
	return value, nil
}
