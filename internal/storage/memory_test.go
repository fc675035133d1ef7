package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, KeyAuthToken); ok {
		t.Fatal("fresh store must be empty")
	}

	if err := store.Set(ctx, KeyAuthToken, "token-123"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := store.Get(ctx, KeyAuthToken)
	if err != nil || !ok || value != "token-123" {
		t.Errorf("Get = (%q, %v, %v)", value, ok, err)
	}

	if err := store.Remove(ctx, KeyAuthToken); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, KeyAuthToken); ok {
		t.Error("key survived remove")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeyAuthToken, "token")
	store.Set(ctx, KeySettings, "settings")

	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, KeySettings); ok {
		t.Error("clear must drop every key")
	}
}
