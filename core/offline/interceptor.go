package offline

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/cache"
)

type Strategy int

const (
	// CacheFirst serves any cached match without touching the network;
	// misses are fetched and lazily cached.
	CacheFirst Strategy = iota
	// NetworkFirst always attempts the network and only falls back to a
	// previously cached response when the network fails.
	NetworkFirst
)

// Classifier picks the caching strategy for an intercepted request.
type Classifier func(req *http.Request) Strategy

// DefaultClassifier sends API calls through network-first and everything
// else (the app shell and other assets) through cache-first.
func DefaultClassifier(req *http.Request) Strategy {
	p := req.URL.Path
	if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/v1/") {
		return NetworkFirst
	}
	return CacheFirst
}

// Interceptor is an http.RoundTripper that applies a per-request caching
// strategy over the cache store. Only GET requests are intercepted; all
// others pass straight to the upstream transport.
type Interceptor struct {
	store       cache.Store
	upstream    http.RoundTripper
	classify    Classifier
	staticName  string
	dynamicName string
	logger      core.Logger

	writes sync.WaitGroup
}

var _ http.RoundTripper = (*Interceptor)(nil)

func NewInterceptor(store cache.Store, upstream http.RoundTripper, conf *core.Config, logger core.Logger) *Interceptor {
	if upstream == nil {
		upstream = http.DefaultTransport
	}
	return &Interceptor{
		store:       store,
		upstream:    upstream,
		classify:    DefaultClassifier,
		staticName:  cache.StaticName(conf.PWA.CacheVersion),
		dynamicName: cache.DynamicName(conf.PWA.CacheVersion),
		logger:      logger,
	}
}

func (ic *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return ic.upstream.RoundTrip(req)
	}

	key := cache.NewKey(req)
	if ic.classify(req) == NetworkFirst {
		return ic.networkFirst(req, key)
	}
	return ic.cacheFirst(req, key)
}

func (ic *Interceptor) networkFirst(req *http.Request, key cache.RequestKey) (*http.Response, error) {
	res, err := ic.fetchAndCache(req, key)
	if err != nil {
		if cached, ok := ic.match(key); ok {
			return synthesize(req, cached), nil
		}
		return nil, err
	}
	return res, nil
}

func (ic *Interceptor) cacheFirst(req *http.Request, key cache.RequestKey) (*http.Response, error) {
	if cached, ok := ic.match(key); ok {
		return synthesize(req, cached), nil
	}
	return ic.fetchAndCache(req, key)
}

// match checks the static generation first; it holds the canonical shell
// paths the dynamic generation is unlikely to duplicate.
func (ic *Interceptor) match(key cache.RequestKey) (cache.StoredResponse, bool) {
	for _, name := range []string{ic.staticName, ic.dynamicName} {
		gen, err := ic.store.Open(name)
		if err != nil {
			ic.logger.Error("opening generation "+name+": "+err.Error(), err)
			continue
		}
		if res, ok := gen.Match(key); ok {
			return res, true
		}
	}
	return cache.StoredResponse{}, false
}

// fetchAndCache fetches from upstream, returns the response immediately and
// clones usable responses into the dynamic generation in the background.
// The response is never held back by the cache write, and cache write
// failures never reach the caller.
func (ic *Interceptor) fetchAndCache(req *http.Request, key cache.RequestKey) (*http.Response, error) {
	res, err := ic.upstream.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, err
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	if res.StatusCode < http.StatusBadRequest {
		snapshot := cache.StoredResponse{Status: res.StatusCode, Header: res.Header, Body: body}.Clone()
		ic.writes.Add(1)
		go func() {
			defer ic.writes.Done()
			gen, err := ic.store.Open(ic.dynamicName)
			if err != nil {
				ic.logger.Error("opening generation "+ic.dynamicName+": "+err.Error(), err)
				return
			}
			if err := gen.Put(key, snapshot); err != nil {
				ic.logger.Error("caching "+key.URL+": "+err.Error(), err)
			}
		}()
	}
	return res, nil
}

// Flush waits for all outstanding background cache writes; used on shutdown
// and by tests.
func (ic *Interceptor) Flush() {
	ic.writes.Wait()
}

func synthesize(req *http.Request, res cache.StoredResponse) *http.Response {
	header := res.Header
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", res.Status, http.StatusText(res.Status)),
		StatusCode:    res.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(res.Body)),
		ContentLength: int64(len(res.Body)),
		Request:       req,
	}
}
