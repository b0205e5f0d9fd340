package main

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/amonks/td/internal/config"
	"github.com/amonks/td/internal/kv"
	"github.com/amonks/td/internal/logging"
	"github.com/amonks/td/todo"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	a := &app{
		cfg:      &config.Config{},
		logger:   logging.Discard(),
		stateDir: t.TempDir(),
		now:      time.Now,
	}
	t.Cleanup(a.close)
	return a
}

func TestResolveIDsDropsRepeats(t *testing.T) {
	a := newTestApp(t)
	a.ephemeral = true
	store, err := a.openStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	todos := store.Todos()
	first, second := todos[0].ID, todos[1].ID

	got, err := resolveIDs(store, []string{first, second, strings.ToUpper(first), first[:12]})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !slices.Equal(got, []string{first, second}) {
		t.Fatalf("expected each todo once in argument order, got %v", got)
	}
}

func TestResolveIDsFailsOnUnknown(t *testing.T) {
	a := newTestApp(t)
	a.ephemeral = true
	store, err := a.openStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := resolveIDs(store, []string{store.Todos()[0].ID, "zzzz"}); err == nil {
		t.Fatal("expected an unknown id to fail")
	}
}

func TestOpenStoreHoldsLockUntilClose(t *testing.T) {
	a := newTestApp(t)
	store, err := a.openStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	other := kv.NewFileStore(a.stateDir)
	done := make(chan error, 1)
	go func() {
		done <- other.Set(todo.DefaultStorageKey, []byte("[]"))
	}()

	select {
	case err := <-done:
		t.Fatalf("expected another writer to wait for the command, finished with %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	if _, err := store.Add(todo.Draft{Name: "while locked", Priority: todo.PriorityLow}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := checkSaved(store); err != nil {
		t.Fatalf("save while locked: %v", err)
	}
	a.close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("other set: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("other writer still blocked after close")
	}
}

func TestOpenSharedStoreDoesNotHoldLock(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.openSharedStore(); err != nil {
		t.Fatalf("open shared store: %v", err)
	}
	if a.release != nil {
		t.Fatal("expected no held lock")
	}
	if err := kv.NewFileStore(a.stateDir).Set(todo.DefaultStorageKey, []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
}
