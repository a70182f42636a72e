package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is the persisted mirror of a session cart. Missing keys must
// return ErrNotPersisted, never a corrupt-read failure.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrNotPersisted means no cart blob exists for the key yet.
var ErrNotPersisted = errors.New("no persisted cart")

const cartTTL = 30 * 24 * time.Hour

// RedisStorage keeps each session's cart as one JSON blob under
// cart:<session>.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func cartKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, cartKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotPersisted
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, cartKey(key), data, cartTTL).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, cartKey(key)).Err()
}

// MemoryStorage is the in-process fallback used when redis is not
// configured, and by tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotPersisted
	}
	return data, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = data
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
