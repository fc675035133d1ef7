package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func setupTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreFromClient(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyAuthToken, "token-123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get(ctx, KeyAuthToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "token-123" {
		t.Errorf("Get = (%q, %v), want (token-123, true)", value, ok)
	}
}

func TestRedisStoreMissingKey(t *testing.T) {
	store := setupTestRedis(t)

	value, ok, err := store.Get(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("missing key must report not-present, got (%q, %v)", value, ok)
	}
}

func TestRedisStoreRemove(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	for _, key := range []string{KeyAuthToken, KeyUserData, KeySettings} {
		if err := store.Set(ctx, key, "value"); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Remove(ctx, KeyAuthToken, KeyUserData); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, KeyAuthToken); ok {
		t.Error("auth token survived remove")
	}
	if _, ok, _ := store.Get(ctx, KeySettings); !ok {
		t.Error("settings must survive a partial remove")
	}
}

func TestRedisStoreClear(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	for _, key := range []string{KeyAuthToken, KeyUserData, KeySettings} {
		if err := store.Set(ctx, key, "value"); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, key := range []string{KeyAuthToken, KeyUserData, KeySettings} {
		if _, ok, _ := store.Get(ctx, key); ok {
			t.Errorf("key %s survived clear", key)
		}
	}

	// clearing an empty store is not an error
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisStoreFromClient(client)
	ctx := context.Background()

	if err := store.Set(ctx, KeyAuthToken, "token-123"); err != nil {
		t.Fatal(err)
	}

	// the raw redis key is namespaced
	if got, err := mr.Get(KeyPrefix + KeyAuthToken); err != nil || got != "token-123" {
		t.Errorf("raw key lookup = (%q, %v), want the prefixed key to exist", got, err)
	}

	// a foreign key outside the namespace survives Clear
	mr.Set("other:app:key", "untouched")
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got, _ := mr.Get("other:app:key"); got != "untouched" {
		t.Error("Clear removed a key outside the agent namespace")
	}
}
