package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileStore_GetMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing"))

	_, err := store.Get("TodoApp")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_SetGet(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	if err := store.Set("TodoApp", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get("TodoApp")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("expected stored value, got %q", got)
	}

	if _, err := os.Stat(filepath.Join(dir, "TodoApp.json")); err != nil {
		t.Fatalf("expected value file on disk: %v", err)
	}
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Set("k", []byte("first")); err != nil {
		t.Fatalf("set first: %v", err)
	}
	if err := store.Set("k", []byte("second")); err != nil {
		t.Fatalf("set second: %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected second, got %q", got)
	}
}

func TestFileStore_SetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	if err := store.Set("k", []byte("value")); err != nil {
		t.Fatalf("set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" && filepath.Ext(entry.Name()) != ".lock" {
			t.Errorf("unexpected file left behind: %s", entry.Name())
		}
	}
}

func TestFileStore_Delete(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Set("k", []byte("value")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("deleting a missing key should succeed, got %v", err)
	}
}

func TestFileStore_RejectsInvalidKeys(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, key := range []string{"", "..", "a/b", "with space", "../escape"} {
		if err := store.Set(key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q) = %v, want ErrInvalidKey", key, err)
		}
		if _, err := store.Get(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Get(%q) = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileStore_ConcurrentWriters(t *testing.T) {
	store := NewFileStore(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := store.Set("k", []byte(fmt.Sprintf("value-%d", n))); err != nil {
				t.Errorf("set %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) < len("value-0") {
		t.Fatalf("expected a complete value, got %q", got)
	}
}

func TestFileStore_HoldAllowsOwnReadsAndWrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	release, err := store.Hold("TodoApp")
	if err != nil {
		t.Fatalf("hold: %v", err)
	}
	if err := store.Set("TodoApp", []byte("held")); err != nil {
		t.Fatalf("set while held: %v", err)
	}
	got, err := store.Get("TodoApp")
	if err != nil {
		t.Fatalf("get while held: %v", err)
	}
	if string(got) != "held" {
		t.Fatalf("expected held, got %q", got)
	}

	if _, err := store.Hold("TodoApp"); !errors.Is(err, ErrHeld) {
		t.Fatalf("expected ErrHeld, got %v", err)
	}

	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
	if err := store.Set("TodoApp", []byte("after")); err != nil {
		t.Fatalf("set after release: %v", err)
	}
}

func TestFileStore_HoldBlocksOtherStores(t *testing.T) {
	dir := t.TempDir()
	holder := NewFileStore(dir)
	other := NewFileStore(dir)

	release, err := holder.Hold("TodoApp")
	if err != nil {
		t.Fatalf("hold: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- other.Set("TodoApp", []byte("other"))
	}()

	select {
	case err := <-done:
		release()
		t.Fatalf("expected other store to wait for the held lock, finished with %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	if err := holder.Set("TodoApp", []byte("holder")); err != nil {
		t.Fatalf("holder set: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("other set: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("other store still blocked after release")
	}

	got, err := holder.Get("TodoApp")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "other" {
		t.Fatalf("expected the waiting write to land last, got %q", got)
	}
}
