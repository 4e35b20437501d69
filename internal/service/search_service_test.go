package service

import (
	"context"
	"testing"
)

func seedSearchState(t *testing.T) *fakeState {
	t.Helper()
	state := newFakeState()
	state.usernames[1] = "alice"
	state.usernames[2] = "bob"
	bookmarks := &fakeBookmarkRepo{s: state}

	seed := []struct {
		userID   int64
		url      string
		desc     string
		tags     []string
		category string
		public   bool
	}{
		{1, "https://go.dev", "go homepage", []string{"golang"}, "docs", true},
		{1, "https://internal.example", "private python notes", []string{"python"}, "notes", false},
		{2, "https://fastapi.tiangolo.com", "python web framework", []string{"python", "web"}, "docs", true},
	}
	svc := NewBookmarkService(bookmarks, nil)
	for _, s := range seed {
		if _, err := svc.Add(context.Background(), s.userID, s.url, s.desc, s.tags, s.category, s.public); err != nil {
			t.Fatalf("seed %q: %v", s.url, err)
		}
	}
	return state
}

func TestSearchOwnedScopedToUser(t *testing.T) {
	state := seedSearchState(t)
	svc := NewSearchService(&fakeBookmarkRepo{s: state}, nil)

	got, err := svc.Owned(context.Background(), 1, "python", "")
	if err != nil {
		t.Fatalf("Owned: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://internal.example" {
		t.Fatalf("owned results = %s, want only https://internal.example", urlsOf(got))
	}
}

func TestSearchOwnedIncludesPrivate(t *testing.T) {
	state := seedSearchState(t)
	svc := NewSearchService(&fakeBookmarkRepo{s: state}, nil)

	got, err := svc.Owned(context.Background(), 1, "", "")
	if err != nil {
		t.Fatalf("Owned: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("owned empty-keyword results = %d, want both bookmarks", len(got))
	}
}

func TestSearchPublicExcludesPrivate(t *testing.T) {
	state := seedSearchState(t)
	svc := NewSearchService(&fakeBookmarkRepo{s: state}, nil)

	got, err := svc.Public(context.Background(), "python", "")
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://fastapi.tiangolo.com" {
		t.Fatalf("public results = %d, want only bob's fastapi bookmark", len(got))
	}
	if got[0].Username != "bob" {
		t.Errorf("username = %q, want bob", got[0].Username)
	}
}

func TestSearchUnknownFieldMatchesNothing(t *testing.T) {
	state := seedSearchState(t)
	svc := NewSearchService(&fakeBookmarkRepo{s: state}, nil)

	owned, err := svc.Owned(context.Background(), 1, "go", "nonsense")
	if err != nil {
		t.Fatalf("Owned: %v", err)
	}
	if len(owned) != 0 {
		t.Errorf("unknown field returned %d owned results, want 0", len(owned))
	}

	public, err := svc.Public(context.Background(), "python", "nonsense")
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("unknown field returned %d public results, want 0", len(public))
	}
}

func TestSearchTrimsQuery(t *testing.T) {
	state := seedSearchState(t)
	svc := NewSearchService(&fakeBookmarkRepo{s: state}, nil)

	got, err := svc.Owned(context.Background(), 1, "  golang  ", " tags ")
	if err != nil {
		t.Fatalf("Owned: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://go.dev" {
		t.Fatalf("trimmed query results = %s, want https://go.dev", urlsOf(got))
	}
}
