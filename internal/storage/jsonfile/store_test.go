package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/clockface/internal/storage"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	ctx := context.Background()

	s := NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := s.Get(ctx, "clockSettings"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() on empty store error = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "clockSettings", `{"isDarkMode":true}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.Get(ctx, "clockSettings")
	if err != nil || got != `{"isDarkMode":true}` {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestStore_InitKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"k":"v"}`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s := NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	got, err := s.Get(context.Background(), "k")
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v; want existing value", got, err)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	missing := NewStore(filepath.Join(dir, "missing.json"))
	if err := missing.Load(); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := NewStore(corrupt).Load(); err == nil {
		t.Error("Load() of a corrupt file should fail")
	}
}

func TestStore_NotLoaded(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "x.json"))
	if err := s.Set(context.Background(), "k", "v"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Set() before Load error = %v, want ErrNotLoaded", err)
	}
}
