package app_test

import (
	"context"
	"testing"

	"alpenquest-service/internal/app"
)

func TestUnlockIsIdempotentAndWritesOnce(t *testing.T) {
	store := newCountingStore()
	registry := app.NewUnlockRegistry(store)
	registry.Load(context.Background())

	if err := <-registry.Unlock("Lake Lucerne"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := <-registry.Unlock("Lake Lucerne"); err != nil {
		t.Fatalf("repeat unlock: %v", err)
	}

	if titles := registry.Titles(); len(titles) != 1 || titles[0] != "Lake Lucerne" {
		t.Fatalf("expected exactly one unlocked title, got %v", titles)
	}
	if n := store.writesTo("unlockedTitles"); n != 1 {
		t.Fatalf("expected a single store write, got %d", n)
	}
}

func TestLoadRestoresPersistedTitles(t *testing.T) {
	store := newCountingStore()
	_ = store.Set(context.Background(), "unlockedTitles", `["The Matterhorn","St. Moritz"]`)

	registry := app.NewUnlockRegistry(store)
	registry.Load(context.Background())

	if !registry.IsUnlocked("The Matterhorn") || !registry.IsUnlocked("St. Moritz") {
		t.Fatalf("expected persisted titles restored, got %v", registry.Titles())
	}
	if registry.IsUnlocked("Rhine Falls") {
		t.Fatalf("did not expect Rhine Falls unlocked")
	}
}

func TestLoadMalformedDataStartsEmpty(t *testing.T) {
	store := newCountingStore()
	_ = store.Set(context.Background(), "unlockedTitles", `{not json`)

	registry := app.NewUnlockRegistry(store)
	registry.Load(context.Background())

	if titles := registry.Titles(); len(titles) != 0 {
		t.Fatalf("expected empty registry on malformed data, got %v", titles)
	}
}
