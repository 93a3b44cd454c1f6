package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
)

// Store layers a fast cache in front of a durable SessionStore. Reads fill the
// cache; writes go to the durable store first.
type Store struct {
	cache   ports.SessionStore
	durable ports.SessionStore
}

var _ ports.SessionStore = (*Store)(nil)

var (
	errNilCacheStore   = errors.New("cache session store is nil")
	errNilDurableStore = errors.New("durable session store is nil")
)

func NewStore(cache ports.SessionStore, durable ports.SessionStore) (*Store, error) {
	if cache == nil {
		return nil, errNilCacheStore
	}
	if durable == nil {
		return nil, errNilDurableStore
	}

	return &Store{cache: cache, durable: durable}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.cache.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipDurable(err) {
		return "", err
	}

	value, err = s.durable.Get(ctx, key)
	if err != nil {
		return "", err
	}

	// A failed fill only costs the next read another durable lookup.
	_ = s.cache.Put(ctx, key, value)
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := s.durable.Put(ctx, key, value); err != nil {
		return err
	}

	if err := s.cache.Put(ctx, key, value); err != nil {
		if deleteErr := s.cache.Delete(ctx, key); deleteErr != nil {
			return fmt.Errorf("cache put failed: %w; cache invalidate failed: %w", err, deleteErr)
		}
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	durableErr := s.durable.Delete(ctx, key)
	cacheErr := s.cache.Delete(ctx, key)

	if durableErr != nil && cacheErr != nil {
		return fmt.Errorf("durable backend delete failed: %w; cache delete failed: %w", durableErr, cacheErr)
	}
	if durableErr != nil {
		return durableErr
	}
	return cacheErr
}

func shouldSkipDurable(err error) bool {
	if errors.Is(err, domain.ErrSessionKeyNotFound) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
