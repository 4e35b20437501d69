package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	dom "github.com/apolzek/neosearch/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyOwnedPrefix  = "search:owned:"
	keyPublicPrefix = "search:public:"
)

// SearchCache caches search results in Redis, keyed by scope, owner and
// the normalized keyword/field pair. Results are invalidated whenever the
// owner's bookmark set changes.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache returns a new SearchCache.
func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

func ownedKey(userID int64, keyword, field string) string {
	return keyOwnedPrefix + strconv.FormatInt(userID, 10) + ":" + normalize(field) + ":" + normalize(keyword)
}

func publicKey(keyword, field string) string {
	return keyPublicPrefix + normalize(field) + ":" + normalize(keyword)
}

// GetOwned returns the cached owner-scope result, or nil on miss.
func (c *SearchCache) GetOwned(ctx context.Context, userID int64, keyword, field string) ([]dom.Bookmark, error) {
	b, err := c.rdb.Get(ctx, ownedKey(userID, keyword, field)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Bookmark
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetOwned stores an owner-scope result.
func (c *SearchCache) SetOwned(ctx context.Context, userID int64, keyword, field string, list []dom.Bookmark) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, ownedKey(userID, keyword, field), b, c.ttl).Err()
}

// GetPublic returns the cached public-scope result, or nil on miss.
func (c *SearchCache) GetPublic(ctx context.Context, keyword, field string) ([]dom.PublicBookmark, error) {
	b, err := c.rdb.Get(ctx, publicKey(keyword, field)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.PublicBookmark
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetPublic stores a public-scope result.
func (c *SearchCache) SetPublic(ctx context.Context, keyword, field string, list []dom.PublicBookmark) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, publicKey(keyword, field), b, c.ttl).Err()
}

// InvalidateUser removes the user's owned-scope keys and every
// public-scope key, since the user's public bookmarks feed both.
func (c *SearchCache) InvalidateUser(ctx context.Context, userID int64) error {
	patterns := []string{
		keyOwnedPrefix + strconv.FormatInt(userID, 10) + ":*",
		keyPublicPrefix + "*",
	}
	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
