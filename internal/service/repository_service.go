package service

import (
	"context"
	"errors"

	"github.com/apolzek/neosearch/internal/cache"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/repo"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ImportSummary reports the outcome of an import or resync. Skipped counts
// feed entries dropped for missing url/description; those are best-effort,
// never fatal.
type ImportSummary struct {
	RepositoryID int64
	Imported     int
	Skipped      int
	Total        int
}

// RepositoryService reconciles repositories against their remote feeds:
// fetch, validate, map entries to bookmarks tagged with the repository name
// as source, and replace the previously imported set.
type RepositoryService struct {
	repos     repo.RepositoryRepo
	bookmarks repo.BookmarkRepo
	fetcher   *feed.Fetcher
	cache     *cache.SearchCache
	log       *zap.Logger
}

// NewRepositoryService creates a RepositoryService. If c is nil, caching is
// disabled.
func NewRepositoryService(r repo.RepositoryRepo, b repo.BookmarkRepo, f *feed.Fetcher, c *cache.SearchCache, log *zap.Logger) *RepositoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RepositoryService{repos: r, bookmarks: b, fetcher: f, cache: c, log: log}
}

// Import registers a repository and imports its feed. Fetch and shape
// validation happen before the repository record is created, so a bad feed
// leaves no trace.
func (s *RepositoryService) Import(ctx context.Context, userID int64, name, url string, isPublic bool) (ImportSummary, error) {
	if !feed.IsRemote(url) {
		return ImportSummary{}, ErrInvalidURL
	}

	entries, skipped, err := s.fetchEntries(ctx, name, url)
	if err != nil {
		return ImportSummary{}, err
	}

	rep, err := s.repos.Create(ctx, dom.Repository{
		UserID:   userID,
		Name:     name,
		URL:      url,
		IsPublic: isPublic,
	})
	if err != nil {
		return ImportSummary{}, err
	}

	return s.replace(ctx, rep, entries, skipped)
}

// Resync re-imports a repository's feed, replacing every bookmark whose
// source is the repository name. The feed is fetched and validated before
// anything is deleted, so a fetch failure leaves the previous set intact.
func (s *RepositoryService) Resync(ctx context.Context, userID, repositoryID int64) (ImportSummary, error) {
	rep, err := s.repos.GetByID(ctx, userID, repositoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ImportSummary{}, ErrNotFound
		}
		return ImportSummary{}, err
	}

	entries, skipped, err := s.fetchEntries(ctx, rep.Name, rep.URL)
	if err != nil {
		return ImportSummary{}, err
	}

	return s.replace(ctx, rep, entries, skipped)
}

// List returns the user's repositories, most recent first.
func (s *RepositoryService) List(ctx context.Context, userID int64) ([]dom.Repository, error) {
	return s.repos.ListByUser(ctx, userID)
}

// Delete removes the repository and the bookmarks imported from it.
// Manual bookmarks sharing the name but with no source are preserved.
func (s *RepositoryService) Delete(ctx context.Context, userID, repositoryID int64) error {
	if err := s.repos.DeleteCascade(ctx, userID, repositoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *RepositoryService) fetchEntries(ctx context.Context, name, url string) ([]feed.Entry, int, error) {
	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.Warn("feed fetch failed",
			zap.String("repository", name), zap.String("url", url), zap.Error(err))
		return nil, 0, err
	}
	entries, skipped, err := feed.ParseFeed(doc)
	if err != nil {
		return nil, 0, err
	}
	if skipped > 0 {
		s.log.Info("feed entries skipped",
			zap.String("repository", name), zap.Int("skipped", skipped))
	}
	return entries, skipped, nil
}

func (s *RepositoryService) replace(ctx context.Context, rep dom.Repository, entries []feed.Entry, skipped int) (ImportSummary, error) {
	bookmarks := make([]dom.Bookmark, 0, len(entries))
	source := rep.Name
	for _, e := range entries {
		bookmarks = append(bookmarks, dom.Bookmark{
			UserID:      rep.UserID,
			URL:         e.URL,
			Description: e.Description,
			Tags:        e.Tags,
			Category:    e.Category,
			Source:      &source,
			IsPublic:    rep.IsPublic,
		})
	}

	if err := s.repos.ReplaceSource(ctx, rep.ID, bookmarks); err != nil {
		return ImportSummary{}, err
	}
	s.invalidateCache(ctx, rep.UserID)

	return ImportSummary{
		RepositoryID: rep.ID,
		Imported:     len(bookmarks),
		Skipped:      skipped,
		Total:        len(bookmarks) + skipped,
	}, nil
}

func (s *RepositoryService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
