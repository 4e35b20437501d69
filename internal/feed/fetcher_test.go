package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"url":"https://a.com","description":"A"}]`))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	doc, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	items, ok := doc.([]any)
	if !ok {
		t.Fatalf("Fetch() returned %T, want []any", doc)
	}
	if len(items) != 1 {
		t.Errorf("Fetch() returned %d items, want 1", len(items))
	}
}

func TestFetchRemoteNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Fetch() error = %v, want ErrUnreachable", err)
	}
}

func TestFetchRemoteConnectionRefused(t *testing.T) {
	f := NewFetcher(time.Second)
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/feed.json")
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Fetch() error = %v, want ErrUnreachable", err)
	}
}

func TestFetchInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("Fetch() error = %v, want ErrInvalidJSON", err)
	}
}

func TestFetchLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(`[{"url":"https://a.com","description":"A"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(time.Second)
	doc, err := f.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if _, ok := doc.([]any); !ok {
		t.Errorf("Fetch() returned %T, want []any", doc)
	}
}

func TestFetchLocalFileMissing(t *testing.T) {
	f := NewFetcher(time.Second)
	_, err := f.Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch() error = %v, want ErrNotFound", err)
	}
}

func TestIsRemote(t *testing.T) {
	cases := []struct {
		location string
		want     bool
	}{
		{"https://example.com/feed.json", true},
		{"http://example.com/feed.json", true},
		{"ftp://example.com/feed.json", false},
		{"/var/data/feed.json", false},
		{"feed.json", false},
	}
	for _, tc := range cases {
		if got := IsRemote(tc.location); got != tc.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}
