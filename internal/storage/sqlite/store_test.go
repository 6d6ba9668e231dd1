package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/clockface/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestStore_GetMissingKey(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_SetAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "clockSettings", `{"isAnalog":true}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get(ctx, "clockSettings")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `{"isAnalog":true}` {
		t.Errorf("Get() = %q", got)
	}

	// Overwrite: last write wins
	if err := store.Set(ctx, "clockSettings", `{"isAnalog":false}`); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, _ = store.Get(ctx, "clockSettings")
	if got != `{"isAnalog":false}` {
		t.Errorf("Get() after overwrite = %q", got)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first := NewStore(dbPath)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := NewStore(dbPath)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Get() after reopen = %q, %v; want \"v\", nil", got, err)
	}
}

func TestStore_LoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() on a missing database error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_NotLoaded(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if _, err := store.Get(context.Background(), "k"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Get() before Load error = %v, want ErrNotLoaded", err)
	}
	if err := store.Set(context.Background(), "k", "v"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Set() before Load error = %v, want ErrNotLoaded", err)
	}
}

func TestStore_InitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	got, err := store.Get(context.Background(), "k")
	if err != nil || got != "v" {
		t.Errorf("Get() after second Init = %q, %v", got, err)
	}
}
