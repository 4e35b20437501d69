package lite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apolzek/neosearch/internal/feed"
)

func newSearcherWith(t *testing.T, locations ...string) *Searcher {
	t.Helper()
	store := writeConfig(t, "local_files: []\n")
	for _, l := range locations {
		if err := store.Add(l); err != nil {
			t.Fatal(err)
		}
	}
	return NewSearcher(store, feed.NewFetcher(5*time.Second), nil)
}

func writeFeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSearcherMergesLocalAndRemote(t *testing.T) {
	local := writeFeedFile(t, `[
		{"url": "https://go.dev", "description": "go homepage", "repository": "local"}
	]`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"url": "https://pkg.go.dev", "description": "go packages", "repository": "remote"}]`))
	}))
	t.Cleanup(srv.Close)

	s := newSearcherWith(t, local, srv.URL)

	got, err := s.Search(context.Background(), "go", "", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2 (one per repository)", len(got))
	}
}

func TestSearcherRepositoryFilter(t *testing.T) {
	local := writeFeedFile(t, `[
		{"url": "https://a.example", "description": "alpha", "repository": "one"},
		{"url": "https://b.example", "description": "beta", "repository": "two"}
	]`)
	s := newSearcherWith(t, local)

	got, err := s.Search(context.Background(), "", "", "two")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0]["url"] != "https://b.example" {
		t.Fatalf("filtered results = %v, want only https://b.example", got)
	}
}

func TestSearcherFieldQuery(t *testing.T) {
	local := writeFeedFile(t, `[
		{"url": "https://go.dev", "description": "language site", "tags": ["golang"]},
		{"url": "https://python.org", "description": "language site", "tags": ["python"]}
	]`)
	s := newSearcherWith(t, local)

	got, err := s.Search(context.Background(), "golang", "tags", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0]["url"] != "https://go.dev" {
		t.Fatalf("tag query results = %v, want only https://go.dev", got)
	}
}

func TestSearcherSkipsBrokenRepositories(t *testing.T) {
	good := writeFeedFile(t, `[{"url": "https://ok.example", "description": "fine"}]`)
	notArray := writeFeedFile(t, `{"url": "https://nope.example"}`)
	missing := filepath.Join(t.TempDir(), "gone.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	s := newSearcherWith(t, notArray, missing, srv.URL, good)

	got, err := s.Search(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0]["url"] != "https://ok.example" {
		t.Fatalf("results = %v, want only the healthy repository's entry", got)
	}
}

func TestSearcherEmptyResultIsNotNil(t *testing.T) {
	local := writeFeedFile(t, `[{"url": "https://go.dev", "description": "go"}]`)
	s := newSearcherWith(t, local)

	got, err := s.Search(context.Background(), "nomatch", "", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", got)
	}
}
