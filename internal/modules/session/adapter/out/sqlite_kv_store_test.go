package out

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteKVStoreSetGetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := NewSQLiteKVStore(filepath.Join(t.TempDir(), ".worksphere", "worksphere.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get(ctx, "token"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%t err=%v", ok, err)
	}
	if err := store.SetMany(ctx, map[string]string{"token": "abc", "user": "{}"}); err != nil {
		t.Fatalf("set many: %v", err)
	}
	if err := store.SetMany(ctx, map[string]string{"token": "def"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := store.Get(ctx, "token")
	if err != nil || !ok || v != "def" {
		t.Fatalf("expected overwritten token, got %q ok=%t err=%v", v, ok, err)
	}
	if err := store.Delete(ctx, "token", "user", "never-set"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "user"); ok {
		t.Fatalf("user must be deleted")
	}
}

func TestSQLiteKVStoreSurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "worksphere.db")
	first, err := NewSQLiteKVStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.SetMany(ctx, map[string]string{"theme": "dark"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = first.Close()

	second, err := NewSQLiteKVStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()
	if v, ok, err := second.Get(ctx, "theme"); err != nil || !ok || v != "dark" {
		t.Fatalf("expected persisted theme, got %q ok=%t err=%v", v, ok, err)
	}
}
