package service

import (
	"context"
	"strings"
	"sync"
	"time"

	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/search"

	"github.com/jackc/pgx/v5"
)

// fakeState is a shared in-memory stand-in for the Postgres store,
// honoring the same contracts: owner scoping, source-keyed cascade and
// atomic replace.
type fakeState struct {
	mu        sync.Mutex
	nextID    int64
	usernames map[int64]string
	repos     map[int64]dom.Repository
	bookmarks []dom.Bookmark
}

func newFakeState() *fakeState {
	return &fakeState{
		usernames: make(map[int64]string),
		repos:     make(map[int64]dom.Repository),
	}
}

func (s *fakeState) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeState) deleteBySourceLocked(userID int64, source string) {
	kept := s.bookmarks[:0]
	for _, b := range s.bookmarks {
		if b.UserID == userID && b.Source != nil && *b.Source == source {
			continue
		}
		kept = append(kept, b)
	}
	s.bookmarks = kept
}

type fakeBookmarkRepo struct{ s *fakeState }

func (r *fakeBookmarkRepo) Create(_ context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.id()
	b.CreatedAt = time.Now()
	r.s.bookmarks = append(r.s.bookmarks, b)
	return b, nil
}

func (r *fakeBookmarkRepo) ListByUser(_ context.Context, userID int64) ([]dom.Bookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Bookmark
	for i := len(r.s.bookmarks) - 1; i >= 0; i-- {
		if r.s.bookmarks[i].UserID == userID {
			out = append(out, r.s.bookmarks[i])
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) ListPublicByUser(_ context.Context, userID int64) ([]dom.Bookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Bookmark
	for i := len(r.s.bookmarks) - 1; i >= 0; i-- {
		b := r.s.bookmarks[i]
		if b.UserID == userID && b.IsPublic {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) Delete(_ context.Context, userID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.bookmarks {
		if b.ID == id && b.UserID == userID {
			r.s.bookmarks = append(r.s.bookmarks[:i], r.s.bookmarks[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func bookmarkFields(b dom.Bookmark) map[string]any {
	e := map[string]any{
		"url":         b.URL,
		"description": b.Description,
		"category":    b.Category,
		"tags":        b.Tags,
	}
	if b.Source != nil {
		e["source"] = *b.Source
	}
	return e
}

func (r *fakeBookmarkRepo) SearchOwned(_ context.Context, userID int64, keyword, field string) ([]dom.Bookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Bookmark
	for i := len(r.s.bookmarks) - 1; i >= 0; i-- {
		b := r.s.bookmarks[i]
		if b.UserID == userID && search.Match(bookmarkFields(b), keyword, field) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) SearchPublic(_ context.Context, keyword, field string) ([]dom.PublicBookmark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.PublicBookmark
	for i := len(r.s.bookmarks) - 1; i >= 0; i-- {
		b := r.s.bookmarks[i]
		if b.IsPublic && search.Match(bookmarkFields(b), keyword, field) {
			out = append(out, dom.PublicBookmark{Bookmark: b, Username: r.s.usernames[b.UserID]})
		}
	}
	return out, nil
}

type fakeRepositoryRepo struct{ s *fakeState }

func (r *fakeRepositoryRepo) Create(_ context.Context, rep dom.Repository) (dom.Repository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rep.ID = r.s.id()
	rep.CreatedAt = time.Now()
	r.s.repos[rep.ID] = rep
	return rep, nil
}

func (r *fakeRepositoryRepo) GetByID(_ context.Context, userID, id int64) (dom.Repository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rep, ok := r.s.repos[id]
	if !ok || rep.UserID != userID {
		return dom.Repository{}, pgx.ErrNoRows
	}
	return rep, nil
}

func (r *fakeRepositoryRepo) ListByUser(_ context.Context, userID int64) ([]dom.Repository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Repository
	for _, rep := range r.s.repos {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepositoryRepo) ListPublicByUser(_ context.Context, userID int64) ([]dom.Repository, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Repository
	for _, rep := range r.s.repos {
		if rep.UserID == userID && rep.IsPublic {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepositoryRepo) ReplaceSource(_ context.Context, repositoryID int64, bookmarks []dom.Bookmark) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rep, ok := r.s.repos[repositoryID]
	if !ok {
		return pgx.ErrNoRows
	}
	r.s.deleteBySourceLocked(rep.UserID, rep.Name)
	for _, b := range bookmarks {
		b.ID = r.s.id()
		b.CreatedAt = time.Now()
		r.s.bookmarks = append(r.s.bookmarks, b)
	}
	now := time.Now()
	rep.LastSynced = &now
	r.s.repos[repositoryID] = rep
	return nil
}

func (r *fakeRepositoryRepo) DeleteCascade(_ context.Context, userID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rep, ok := r.s.repos[id]
	if !ok || rep.UserID != userID {
		return pgx.ErrNoRows
	}
	r.s.deleteBySourceLocked(userID, rep.Name)
	delete(r.s.repos, id)
	return nil
}

// bookmarksBySource returns the user's bookmarks imported from source.
func (s *fakeState) bookmarksBySource(userID int64, source string) []dom.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dom.Bookmark
	for _, b := range s.bookmarks {
		if b.UserID == userID && b.Source != nil && *b.Source == source {
			out = append(out, b)
		}
	}
	return out
}

func urlsOf(list []dom.Bookmark) string {
	urls := make([]string, len(list))
	for i, b := range list {
		urls[i] = b.URL
	}
	return strings.Join(urls, ",")
}
