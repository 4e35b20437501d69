package service

import (
	"context"
	"errors"
	"strings"

	"github.com/apolzek/neosearch/internal/cache"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidURL = errors.New("url must start with http:// or https://")
)

// ManualCategory is assigned to bookmarks the owner adds by hand when no
// category is given.
const ManualCategory = "USER"

// BookmarkService handles manually added bookmarks. Imported bookmarks go
// through RepositoryService instead.
type BookmarkService struct {
	repo  repo.BookmarkRepo
	cache *cache.SearchCache
}

// NewBookmarkService creates a BookmarkService. If c is nil, caching is disabled.
func NewBookmarkService(r repo.BookmarkRepo, c *cache.SearchCache) *BookmarkService {
	return &BookmarkService{repo: r, cache: c}
}

// Add stores a manual bookmark (source stays nil).
func (s *BookmarkService) Add(ctx context.Context, userID int64, url, description string, tags []string, category string, isPublic bool) (dom.Bookmark, error) {
	url = strings.TrimSpace(url)
	if !feed.IsRemote(url) {
		return dom.Bookmark{}, ErrInvalidURL
	}
	if tags == nil {
		tags = []string{}
	}
	if category == "" {
		category = ManualCategory
	}

	b, err := s.repo.Create(ctx, dom.Bookmark{
		UserID:      userID,
		URL:         url,
		Description: strings.TrimSpace(description),
		Tags:        tags,
		Category:    category,
		IsPublic:    isPublic,
	})
	if err != nil {
		return dom.Bookmark{}, err
	}
	s.invalidateCache(ctx, userID)
	return b, nil
}

// List returns all of the user's bookmarks, most recent first.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes one bookmark owned by the user.
func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *BookmarkService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
