package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "token:"
	defaultTTL     = 24 * time.Hour
)

// Store manages opaque access tokens in Redis. A token is a random hex
// string mapped to the owning user id; nothing is encoded in the token
// itself.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new token store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Issue stores a new token for the user and returns it.
func (s *Store) Issue(ctx context.Context, userID int64) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	key := tokenKeyPrefix + token
	if err := s.rdb.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Revoke removes a token.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, tokenKeyPrefix+token).Err()
}

// Resolve returns the user id owning the token, or false when the token
// is unknown or expired.
func (s *Store) Resolve(ctx context.Context, token string) (int64, bool) {
	v, err := s.rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func newToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
