package cachestore

import (
	"net/http"
	"sort"
	"testing"

	"github.com/trezcool/eduhub/core/cache"
)

func TestStore_generations(t *testing.T) {
	store := Open()

	gen, err := store.Open("eduhub-static-v1")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if gen.Name() != "eduhub-static-v1" {
		t.Errorf("Name() = %q, want %q", gen.Name(), "eduhub-static-v1")
	}

	// reopening returns the same generation
	again, _ := store.Open("eduhub-static-v1")
	key := cache.RequestKey{Method: http.MethodGet, URL: "/manifest.json"}
	if err := gen.Put(key, cache.StoredResponse{Status: 200, Body: []byte("{}")}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if _, ok := again.Match(key); !ok {
		t.Error("Match() on reopened generation missed an existing entry")
	}

	_, _ = store.Open("eduhub-dynamic-v1")
	names, _ := store.Names()
	sort.Strings(names)
	want := []string{"eduhub-dynamic-v1", "eduhub-static-v1"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("Names() = %v, want %v", names, want)
	}

	if ok, _ := store.Delete("eduhub-static-v1"); !ok {
		t.Error("Delete() = false, want true for existing generation")
	}
	if ok, _ := store.Delete("eduhub-static-v1"); ok {
		t.Error("Delete() = true, want false for missing generation")
	}
}

func TestGeneration_rejectsNonGET(t *testing.T) {
	store := Open()
	gen, _ := store.Open("eduhub-dynamic-v1")

	key := cache.RequestKey{Method: http.MethodPost, URL: "/v1/ai/chat"}
	if err := gen.Put(key, cache.StoredResponse{Status: 200}); err != cache.ErrNotCacheable {
		t.Errorf("Put() error = %v, want %v", err, cache.ErrNotCacheable)
	}
}

func TestGeneration_immutableSnapshots(t *testing.T) {
	store := Open()
	gen, _ := store.Open("eduhub-dynamic-v1")

	key := cache.RequestKey{Method: http.MethodGet, URL: "/v1/grades"}
	body := []byte("original")
	_ = gen.Put(key, cache.StoredResponse{Status: 200, Body: body})
	body[0] = 'X' // caller mutation must not reach the store

	stored, ok := gen.Match(key)
	if !ok {
		t.Fatal("Match() missed an existing entry")
	}
	if string(stored.Body) != "original" {
		t.Errorf("stored body = %q, want %q", stored.Body, "original")
	}

	stored.Body[0] = 'Y' // mutating a match result must not reach the store
	stored2, _ := gen.Match(key)
	if string(stored2.Body) != "original" {
		t.Errorf("stored body after mutation = %q, want %q", stored2.Body, "original")
	}
}
