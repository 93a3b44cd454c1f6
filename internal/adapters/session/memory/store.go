package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	"github.com/patrickmn/go-cache"
)

const DefaultTTL = 12 * time.Hour

// Store is a process-local SessionStore. Slots expire after the configured TTL.
type Store struct {
	cache *cache.Cache
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{cache: cache.New(ttl, ttl/4)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, found := s.cache.Get(key)
	if !found {
		return "", fmt.Errorf("session slot %q: %w", key, domain.ErrSessionKeyNotFound)
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("session slot %q holds %T", key, value)
	}
	return text, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Delete(key)
	return nil
}
