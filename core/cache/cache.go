// Package cache models the browser-style cache storage backing the offline
// gateway: named generations of immutable response snapshots keyed by request.
package cache

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// errors
	ErrNotCacheable = errors.New("only GET requests can be cached")
	ErrNotFound     = errors.New("cache generation not found")
)

type (
	// RequestKey identifies a cacheable request. Only GET requests are ever
	// cached or served from cache.
	RequestKey struct {
		Method string
		URL    string
	}

	// StoredResponse is an immutable snapshot of a network response.
	// There is no expiry metadata; eviction only happens at generation
	// granularity during activation.
	StoredResponse struct {
		Status int
		Header http.Header
		Body   []byte
	}

	// Generation is a named key→response map. Two generations are current at
	// any time: static (populated once at install) and dynamic (populated
	// lazily as matching requests succeed).
	Generation interface {
		Name() string
		Match(key RequestKey) (StoredResponse, bool)
		Put(key RequestKey, res StoredResponse) error
		Keys() []RequestKey
	}

	// Store is a persistent map of named cache generations.
	Store interface {
		// Open returns the named generation, creating it if needed.
		Open(name string) (Generation, error)
		// Names lists all existing generation names.
		Names() ([]string, error)
		// Delete drops a whole generation; it reports whether it existed.
		Delete(name string) (bool, error)
	}
)

// NewKey builds the RequestKey for a request. The key is the origin-relative
// request URI; the app is single-origin so the host is irrelevant.
func NewKey(req *http.Request) RequestKey {
	return RequestKey{Method: req.Method, URL: req.URL.RequestURI()}
}

// Cacheable reports whether a key may ever be stored.
func (k RequestKey) Cacheable() bool { return k.Method == http.MethodGet }

// Clone deep-copies a snapshot so callers can never mutate stored state.
func (r StoredResponse) Clone() StoredResponse {
	body := make([]byte, len(r.Body))
	copy(body, r.Body)
	return StoredResponse{Status: r.Status, Header: cloneHeader(r.Header), Body: body}
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	clone := make(http.Header, len(h))
	for k, vv := range h {
		vv2 := make([]string, len(vv))
		copy(vv2, vv)
		clone[k] = vv2
	}
	return clone
}

// StaticName returns the versioned name of the static generation.
// Bumping the version is the only supported cache-busting mechanism.
func StaticName(version int) string { return fmt.Sprintf("eduhub-static-v%d", version) }

// DynamicName returns the versioned name of the dynamic generation.
func DynamicName(version int) string { return fmt.Sprintf("eduhub-dynamic-v%d", version) }
