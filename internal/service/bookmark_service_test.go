package service

import (
	"context"
	"errors"
	"testing"
)

func TestAddBookmarkDefaults(t *testing.T) {
	state := newFakeState()
	svc := NewBookmarkService(&fakeBookmarkRepo{s: state}, nil)

	b, err := svc.Add(context.Background(), 1, "  https://go.dev  ", " go homepage ", nil, "", false)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if b.URL != "https://go.dev" || b.Description != "go homepage" {
		t.Errorf("url/description not trimmed: %q / %q", b.URL, b.Description)
	}
	if b.Category != ManualCategory {
		t.Errorf("category = %q, want %q", b.Category, ManualCategory)
	}
	if b.Tags == nil || len(b.Tags) != 0 {
		t.Errorf("tags = %v, want empty non-nil slice", b.Tags)
	}
	if b.Source != nil {
		t.Errorf("manual bookmark has source %q", *b.Source)
	}
	if b.ID == 0 {
		t.Error("id not assigned")
	}
}

func TestAddBookmarkRejectsBadURL(t *testing.T) {
	svc := NewBookmarkService(&fakeBookmarkRepo{s: newFakeState()}, nil)
	for _, url := range []string{"", "go.dev", "ftp://go.dev", "   "} {
		if _, err := svc.Add(context.Background(), 1, url, "desc", nil, "", false); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Add(%q) err = %v, want ErrInvalidURL", url, err)
		}
	}
}

func TestDeleteBookmarkOwnerScoped(t *testing.T) {
	state := newFakeState()
	svc := NewBookmarkService(&fakeBookmarkRepo{s: state}, nil)

	b, err := svc.Add(context.Background(), 1, "https://go.dev", "go", nil, "", false)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(context.Background(), 2, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), 1, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
