package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/cache"
	"github.com/trezcool/eduhub/storage/cachestore"
	testutil "github.com/trezcool/eduhub/tests"
)

func newTestConf(baseURL string) *core.Config {
	conf := testutil.NewConfig()
	conf.FrontendBaseURL = baseURL
	return conf
}

func shellServer(t *testing.T, failPaths ...string) *httptest.Server {
	t.Helper()
	failing := make(map[string]bool, len(failPaths))
	for _, p := range failPaths {
		failing[p] = true
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing[r.URL.Path] {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("asset:" + r.URL.Path))
	}))
}

func TestWorker_Install(t *testing.T) {
	srv := shellServer(t)
	defer srv.Close()

	store := cachestore.Open()
	w := NewWorker(store, srv.Client(), newTestConf(srv.URL), testutil.NewLogger())

	if err := w.Install(context.Background()); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}
	if !w.Installed() {
		t.Error("Installed() = false after successful install")
	}

	gen, _ := store.Open(cache.StaticName(1))
	for _, asset := range StaticAssets {
		res, ok := gen.Match(cache.RequestKey{Method: http.MethodGet, URL: asset})
		if !ok {
			t.Errorf("static generation is missing %q", asset)
			continue
		}
		if want := "asset:" + asset; string(res.Body) != want {
			t.Errorf("cached %q body = %q, want %q", asset, res.Body, want)
		}
	}
}

func TestWorker_Install_allOrNothing(t *testing.T) {
	srv := shellServer(t, "/index.html")
	defer srv.Close()

	store := cachestore.Open()
	w := NewWorker(store, srv.Client(), newTestConf(srv.URL), testutil.NewLogger())
	w.assets = []string{"/", "/index.html"}

	if err := w.Install(context.Background()); err == nil {
		t.Fatal("Install() succeeded with a failing asset, want error")
	}
	if w.Installed() {
		t.Error("Installed() = true after failed install")
	}

	// the partial generation must be gone so a retry re-fetches the whole list
	names, _ := store.Names()
	for _, name := range names {
		if name == cache.StaticName(1) {
			t.Errorf("partially populated %q still present", name)
		}
	}
}

func TestWorker_Activate(t *testing.T) {
	store := cachestore.Open()
	for _, name := range []string{
		"eduhub-static-v0",
		"eduhub-dynamic-v0",
		cache.StaticName(1),
		cache.DynamicName(1),
	} {
		if _, err := store.Open(name); err != nil {
			t.Fatalf("Open(%q) failed: %v", name, err)
		}
	}

	w := NewWorker(store, nil, newTestConf("http://localhost"), testutil.NewLogger())
	if err := w.Activate(context.Background()); err != nil {
		t.Fatalf("Activate() failed: %v", err)
	}
	if !w.Controlling() {
		t.Error("Controlling() = false after activation")
	}

	names, _ := store.Names()
	sort.Strings(names)
	want := []string{cache.DynamicName(1), cache.StaticName(1)}
	if len(names) != 2 || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}
