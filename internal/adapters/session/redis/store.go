package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "rai:session:"

// Store keeps session slots in Redis so several machines or containers can
// share one terminal session.
type Store struct {
	client    goredis.Cmdable
	sessionID string
	ttl       time.Duration
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(client goredis.Cmdable, sessionID string, ttl time.Duration) *Store {
	return &Store{client: client, sessionID: sessionID, ttl: ttl}
}

// NewClient accepts either a redis:// URL or a bare host:port.
func NewClient(addr string) *goredis.Client {
	opt, err := goredis.ParseURL(addr)
	if err != nil {
		opt = &goredis.Options{Addr: addr}
	}
	return goredis.NewClient(opt)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return "", err
	}

	value, err := s.client.Get(ctx, redisKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", fmt.Errorf("session slot %q: %w", key, domain.ErrSessionKeyNotFound)
		}
		return "", fmt.Errorf("read session slot %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, redisKey, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("write session slot %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("delete session slot %q: %w", key, err)
	}
	return nil
}

func (s *Store) redisKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("session key is empty")
	}
	if strings.TrimSpace(s.sessionID) == "" {
		return "", errors.New("session id is empty")
	}

	return keyPrefix + s.sessionID + ":" + trimmed, nil
}
