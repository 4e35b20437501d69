package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/apolzek/neosearch/internal/cache"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/repo"
	"github.com/apolzek/neosearch/internal/search"

	"golang.org/x/sync/singleflight"
)

// SearchService executes keyword/field search over a visibility scope:
// the caller's own bookmarks when authenticated, public bookmarks across
// all users otherwise.
type SearchService struct {
	repo  repo.BookmarkRepo
	cache *cache.SearchCache
	sf    singleflight.Group
}

// NewSearchService creates a SearchService. If c is nil, caching is disabled.
func NewSearchService(r repo.BookmarkRepo, c *cache.SearchCache) *SearchService {
	return &SearchService{repo: r, cache: c}
}

// Owned searches the user's bookmarks, any visibility. An unknown field
// matches nothing.
func (s *SearchService) Owned(ctx context.Context, userID int64, keyword, field string) ([]dom.Bookmark, error) {
	keyword, field = normalizeQuery(keyword, field)
	if !search.ValidField(field) {
		return []dom.Bookmark{}, nil
	}
	if s.cache == nil {
		return s.repo.SearchOwned(ctx, userID, keyword, field)
	}

	key := "owned:" + strconv.FormatInt(userID, 10) + ":" + field + ":" + strings.ToLower(keyword)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetOwned(ctx, userID, keyword, field); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.SearchOwned(ctx, userID, keyword, field)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetOwned(ctx, userID, keyword, field, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Bookmark), nil
}

// Public searches public bookmarks across all users; results carry the
// owner's username.
func (s *SearchService) Public(ctx context.Context, keyword, field string) ([]dom.PublicBookmark, error) {
	keyword, field = normalizeQuery(keyword, field)
	if !search.ValidField(field) {
		return []dom.PublicBookmark{}, nil
	}
	if s.cache == nil {
		return s.repo.SearchPublic(ctx, keyword, field)
	}

	key := "public:" + field + ":" + strings.ToLower(keyword)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetPublic(ctx, keyword, field); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.SearchPublic(ctx, keyword, field)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetPublic(ctx, keyword, field, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.PublicBookmark), nil
}

func normalizeQuery(keyword, field string) (string, string) {
	return strings.TrimSpace(keyword), strings.TrimSpace(field)
}
