package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	// KeyPrefix namespaces all agent keys in a shared redis
	KeyPrefix = "codementor:agent:"

	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// RedisStore persists agent state in redis, the stand-in for extension
// local storage that survives agent restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s, %w", addr, err)
	}
	log.Infof("connected to redis at %s", addr)

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client, used by tests
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func makeKey(key string) string {
	return KeyPrefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, makeKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read key %s, %w", key, err)
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, makeKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("cannot write key %s, %w", key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, keys ...string) error {
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, makeKey(key))
	}
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cannot remove keys %v, %w", keys, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, KeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("cannot list keys for clear, %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cannot clear storage, %w", err)
	}
	return nil
}
