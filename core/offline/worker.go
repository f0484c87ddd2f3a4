// Package offline implements the installable-app offline gateway: a lifecycle
// worker that precaches the app shell and garbage-collects stale cache
// generations, and a request interceptor that serves intercepted fetches
// from the cache store.
package offline

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/cache"
)

// StaticAssets is the app shell precached at install time.
var StaticAssets = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/pwa-192x192.png",
	"/pwa-512x512.png",
}

// Worker drives the install/activate lifecycle over the cache store.
type Worker struct {
	store       cache.Store
	client      *http.Client
	baseURL     string
	assets      []string
	staticName  string
	dynamicName string
	logger      core.Logger

	mutex       sync.RWMutex
	installed   bool
	controlling bool
}

func NewWorker(store cache.Store, client *http.Client, conf *core.Config, logger core.Logger) *Worker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Worker{
		store:       store,
		client:      client,
		baseURL:     conf.FrontendBaseURL,
		assets:      StaticAssets,
		staticName:  cache.StaticName(conf.PWA.CacheVersion),
		dynamicName: cache.DynamicName(conf.PWA.CacheVersion),
		logger:      logger,
	}
}

// Install opens the static generation and populates the app shell assets,
// fetching them concurrently. Population is all-or-nothing: any failed asset
// fails the whole install and drops the partially populated generation, so a
// retry re-fetches the entire list.
func (w *Worker) Install(ctx context.Context) error {
	gen, err := w.store.Open(w.staticName)
	if err != nil {
		return errors.Wrap(err, "opening static generation")
	}

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
	)
	for _, asset := range w.assets {
		wg.Add(1)
		go func(asset string) {
			defer wg.Done()
			if err := w.addAsset(ctx, gen, asset); err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
			}
		}(asset)
	}
	wg.Wait()

	if firstErr != nil {
		if _, err := w.store.Delete(w.staticName); err != nil {
			w.logger.Error("dropping partial static generation: "+err.Error(), err)
		}
		return errors.Wrap(firstErr, "precaching static assets")
	}

	// skip-waiting semantics: the worker is usable immediately
	w.mutex.Lock()
	w.installed = true
	w.mutex.Unlock()
	w.logger.Info("offline worker installed: " + w.staticName)
	return nil
}

func (w *Worker) addAsset(ctx context.Context, gen cache.Generation, asset string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+asset, nil)
	if err != nil {
		return errors.Wrapf(err, "building request for %s", asset)
	}
	res, err := w.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "fetching %s", asset)
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("fetching %s: status %d", asset, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s", asset)
	}
	key := cache.RequestKey{Method: http.MethodGet, URL: asset}
	return errors.Wrapf(
		gen.Put(key, cache.StoredResponse{Status: res.StatusCode, Header: res.Header, Body: body}),
		"caching %s", asset,
	)
}

// Activate deletes every cache generation whose name is not the current
// static or dynamic name, then takes control of open app instances.
// Deletions run concurrently; all stale generations are gone before the
// worker reports Controlling.
func (w *Worker) Activate(ctx context.Context) error {
	names, err := w.store.Names()
	if err != nil {
		return errors.Wrap(err, "listing cache generations")
	}

	var wg sync.WaitGroup
	for _, name := range names {
		if name == w.staticName || name == w.dynamicName {
			continue
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := w.store.Delete(name); err != nil {
				w.logger.Error("deleting stale generation "+name+": "+err.Error(), err)
			}
		}(name)
	}
	wg.Wait()

	w.mutex.Lock()
	w.controlling = true
	w.mutex.Unlock()
	w.logger.Info("offline worker activated: " + w.staticName + ", " + w.dynamicName)
	return nil
}

// Installed reports whether the static generation was fully populated.
func (w *Worker) Installed() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.installed
}

// Controlling reports whether activation completed.
func (w *Worker) Controlling() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.controlling
}
