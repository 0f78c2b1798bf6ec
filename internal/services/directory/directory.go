// Package directory resolves request identities to existing user ids.
package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/repos/users"
	pgusers "github.com/fastprodman/pockettrader/internal/repos/users/postgres"
	lru "github.com/hashicorp/golang-lru"
)

// Service caches positive lookups only. Users are never mutated or deleted by
// this core, so a cached id never goes stale.
type Service struct {
	users users.Users
	cache *lru.Cache // uint64 id or string username -> uint64 id
}

func New(db *sql.DB, cacheSize int) (*Service, error) {
	return newService(pgusers.New(db), cacheSize)
}

func newService(u users.Users, cacheSize int) (*Service, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("user cache: %w", err)
	}

	return &Service{users: u, cache: cache}, nil
}

// Resolve returns the id of an existing user identified by userID or, when
// userID is zero, by username.
func (s *Service) Resolve(ctx context.Context, userID uint64, username string) (uint64, error) {
	switch {
	case userID != 0:
		return s.resolveID(ctx, userID)
	case username != "":
		return s.resolveName(ctx, username)
	default:
		return 0, apperr.Invalid("userID or username required")
	}
}

func (s *Service) resolveID(ctx context.Context, userID uint64) (uint64, error) {
	if _, ok := s.cache.Get(userID); ok {
		return userID, nil
	}

	err := s.users.Exists(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("resolve user %d: %w", userID, apperr.Storage(err))
	}

	s.cache.Add(userID, userID)

	return userID, nil
}

func (s *Service) resolveName(ctx context.Context, username string) (uint64, error) {
	if v, ok := s.cache.Get(username); ok {
		return v.(uint64), nil
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("resolve user %q: %w", username, apperr.Storage(err))
	}

	s.cache.Add(username, u.ID)
	s.cache.Add(u.ID, u.ID)

	return u.ID, nil
}
