package lite

import (
	"context"

	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/search"

	"go.uber.org/zap"
)

// Searcher fans a keyword/field query out over every configured
// repository. Repositories that cannot be fetched or are not JSON arrays
// are skipped, best effort, like malformed feed entries elsewhere.
type Searcher struct {
	store   *FileStore
	fetcher *feed.Fetcher
	log     *zap.Logger
}

// NewSearcher returns a new Searcher.
func NewSearcher(store *FileStore, fetcher *feed.Fetcher, log *zap.Logger) *Searcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{store: store, fetcher: fetcher, log: log}
}

// Search loads every configured repository and returns the raw entries
// matching keyword/field. The optional repository filter keeps only
// entries whose "repository" value equals it.
func (s *Searcher) Search(ctx context.Context, keyword, field, repository string) ([]map[string]any, error) {
	locations, err := s.store.List()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0)
	for _, location := range locations {
		doc, err := s.fetcher.Fetch(ctx, location)
		if err != nil {
			s.log.Warn("skipping repository", zap.String("location", location), zap.Error(err))
			continue
		}
		items, ok := doc.([]any)
		if !ok {
			s.log.Warn("skipping repository: not a JSON array", zap.String("location", location))
			continue
		}

		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if !search.Match(entry, keyword, field) {
				continue
			}
			if repository != "" {
				if v, _ := entry["repository"].(string); v != repository {
					continue
				}
			}
			results = append(results, entry)
		}
	}
	return results, nil
}
