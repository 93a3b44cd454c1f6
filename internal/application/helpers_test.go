package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// tickingClock advances by one second on every read.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Second)
	return c.now
}

type inMemorySessionStore struct {
	mu     sync.Mutex
	values map[string]string
	putErr map[string]error
}

func newInMemorySessionStore() *inMemorySessionStore {
	return &inMemorySessionStore{values: map[string]string{}, putErr: map[string]error{}}
}

func (s *inMemorySessionStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrSessionKeyNotFound
	}
	return value, nil
}

func (s *inMemorySessionStore) Put(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.putErr[key]; err != nil {
		return err
	}
	s.values[key] = value
	return nil
}

func (s *inMemorySessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *inMemorySessionStore) snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// hookedSessionStore runs afterPut once each successful write has landed.
type hookedSessionStore struct {
	*inMemorySessionStore
	afterPut func(key string)
}

func (s *hookedSessionStore) Put(ctx context.Context, key string, value string) error {
	if err := s.inMemorySessionStore.Put(ctx, key, value); err != nil {
		return err
	}
	if s.afterPut != nil {
		s.afterPut(key)
	}
	return nil
}
