package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
)

const (
	sessionDirMode = 0o700
	slotFileMode   = 0o600
)

// Store keeps each slot of one terminal session as a file under
// <root>/<sessionID>/. With a positive ttl, a slot not rewritten within ttl
// reads as missing.
type Store struct {
	root string
	dir  string
	ttl  time.Duration
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(root string, sessionID string, ttl time.Duration) *Store {
	root = filepath.Clean(root)
	return &Store{root: root, dir: filepath.Join(root, sessionID), ttl: ttl}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create session slot %q: %w", key, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session slot %q: %w", key, err)
	}
	if err := tmp.Chmod(slotFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod session slot %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session slot %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("commit session slot %q: %w", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("session slot %q: %w", key, domain.ErrSessionKeyNotFound)
		}
		return "", fmt.Errorf("stat session slot %q: %w", key, err)
	}
	if s.expired(info.ModTime()) {
		_ = os.Remove(path)
		return "", fmt.Errorf("session slot %q expired: %w", key, domain.ErrSessionKeyNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("session slot %q: %w", key, domain.ErrSessionKeyNotFound)
		}
		return "", fmt.Errorf("read session slot %q: %w", key, err)
	}

	return string(data), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session slot %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("session key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." || strings.ContainsRune(cleaned, filepath.Separator) {
		return "", fmt.Errorf("invalid session key %q", key)
	}

	return filepath.Join(s.dir, cleaned), nil
}

// PruneExpired removes session directories under the store root, other than
// this store's own, whose slots were all last written more than ttl ago. It
// returns how many directories were removed.
func (s *Store) PruneExpired(ctx context.Context) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("list session root: %w", err)
	}

	var (
		removed int
		errs    error
	)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(s.root, entry.Name())
		if dir == s.dir {
			continue
		}

		latest, err := latestModTime(dir)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if !s.expired(latest) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			errs = errors.Join(errs, fmt.Errorf("remove expired session %q: %w", entry.Name(), err))
			continue
		}
		removed++
	}

	return removed, errs
}

func (s *Store) expired(modTime time.Time) bool {
	return s.ttl > 0 && time.Since(modTime) > s.ttl
}

func latestModTime(dir string) (time.Time, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat session %q: %w", dir, err)
	}
	latest := info.ModTime()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return time.Time{}, fmt.Errorf("list session %q: %w", dir, err)
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}

	return latest, nil
}
