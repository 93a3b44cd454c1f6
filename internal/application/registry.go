package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	ContentPathKey = "filepath"
	IndexPathKey   = "vectorPath"
	// GenerationKey holds the commit counter for the pair. An odd value marks
	// a publish in progress.
	GenerationKey = "generation"

	readAttempts = 5
	readBackoff  = 10 * time.Millisecond
)

var errDocumentInFlux = errors.New("active document is being replaced; run `rai session end` if this persists")

// DocumentSource is the read-only view of the active document used by chat.
type DocumentSource interface {
	Active(ctx context.Context) (domain.DocumentReference, bool, error)
}

// DocumentRegistry holds the active document reference for the current
// session. Only UploadService publishes into it. Several registries may share
// one store: the generation slot lets readers tell a committed pair from one
// that is being rewritten.
type DocumentRegistry struct {
	store  ports.SessionStore
	logger *zap.Logger
	mu     sync.RWMutex
}

var _ DocumentSource = (*DocumentRegistry)(nil)

func NewDocumentRegistry(store ports.SessionStore, logger *zap.Logger) *DocumentRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DocumentRegistry{store: store, logger: logger.With(zap.String("module", "registry"))}
}

// Active returns the committed pair. It retries briefly while another writer
// is mid-publish and never returns a pair mixing two publishes.
func (r *DocumentRegistry) Active(ctx context.Context) (domain.DocumentReference, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for attempt := 1; ; attempt++ {
		ref, ok, settled, err := r.read(ctx)
		if err != nil {
			return domain.DocumentReference{}, false, err
		}
		if settled {
			return ref, ok, nil
		}
		if attempt == readAttempts {
			r.logger.Warn("active document still in flux", zap.Int("attempts", attempt))
			return domain.DocumentReference{}, false, fmt.Errorf("%w: %w", domain.ErrSessionStore, errDocumentInFlux)
		}

		select {
		case <-ctx.Done():
			return domain.DocumentReference{}, false, ctx.Err()
		case <-time.After(time.Duration(attempt) * readBackoff):
		}
	}
}

// Clear forgets the active document, ending the session's document identity.
// The generation keeps counting so a reader straddling Clear and a later
// publish still notices the change.
func (r *DocumentRegistry) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, _, err := r.slot(ctx, GenerationKey)
	if err != nil {
		return fmt.Errorf("%w: read generation slot: %w", domain.ErrSessionStore, err)
	}
	base := nextEvenGeneration(current)
	if err := r.store.Put(ctx, GenerationKey, strconv.FormatUint(base+1, 10)); err != nil {
		return fmt.Errorf("%w: mark generation slot: %w", domain.ErrSessionStore, err)
	}

	var errs error
	for _, key := range []string{ContentPathKey, IndexPathKey} {
		if err := r.store.Delete(ctx, key); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete %s slot: %w", key, err))
		}
	}
	if err := r.store.Put(ctx, GenerationKey, strconv.FormatUint(base+2, 10)); err != nil {
		errs = errors.Join(errs, fmt.Errorf("commit generation slot: %w", err))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", domain.ErrSessionStore, errs)
	}

	r.logger.Info("active document cleared")
	return nil
}

// publish atomically replaces the active reference. The generation goes odd
// before the slots are written and even once both are in place. Any failure
// restores the slots and generation that were there before.
func (r *DocumentRegistry) publish(ctx context.Context, ref domain.DocumentReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previousGen, hadGen, err := r.slot(ctx, GenerationKey)
	if err != nil {
		return fmt.Errorf("%w: read generation slot: %w", domain.ErrSessionStore, err)
	}
	base := nextEvenGeneration(previousGen)

	previous := map[string]slotValue{}
	for _, key := range []string{ContentPathKey, IndexPathKey} {
		value, ok, err := r.slot(ctx, key)
		if err != nil {
			return fmt.Errorf("%w: read previous %s slot: %w", domain.ErrSessionStore, key, err)
		}
		previous[key] = slotValue{value: value, ok: ok}
	}
	previous[GenerationKey] = slotValue{value: previousGen, ok: hadGen}

	if err := r.store.Put(ctx, GenerationKey, strconv.FormatUint(base+1, 10)); err != nil {
		return fmt.Errorf("%w: mark generation slot: %w", domain.ErrSessionStore, err)
	}

	written := []string{GenerationKey}
	writes := []struct {
		key   string
		value string
	}{
		{key: IndexPathKey, value: ref.IndexPath},
		{key: ContentPathKey, value: ref.ContentPath},
		{key: GenerationKey, value: strconv.FormatUint(base+2, 10)},
	}
	for _, w := range writes {
		if err := r.store.Put(ctx, w.key, w.value); err != nil {
			rollbackErr := r.restore(ctx, written, previous)
			if rollbackErr != nil {
				return fmt.Errorf("%w: write %s slot and rollback: %w", domain.ErrSessionStore, w.key, errors.Join(err, rollbackErr))
			}
			return fmt.Errorf("%w: write %s slot: %w", domain.ErrSessionStore, w.key, err)
		}
		written = append(written, w.key)
	}

	r.logger.Info("active document published",
		zap.String("content_path", ref.ContentPath),
		zap.String("index_path", ref.IndexPath),
		zap.Uint64("generation", base+2),
	)
	return nil
}

type slotValue struct {
	value string
	ok    bool
}

// restore puts back the slots in written, generation last so readers keep
// seeing an odd marker until the old pair is whole again.
func (r *DocumentRegistry) restore(ctx context.Context, written []string, previous map[string]slotValue) error {
	var errs error
	for _, key := range []string{IndexPathKey, ContentPathKey, GenerationKey} {
		if !slices.Contains(written, key) {
			continue
		}

		prev := previous[key]
		var err error
		if prev.ok {
			err = r.store.Put(ctx, key, prev.value)
		} else {
			err = r.store.Delete(ctx, key)
		}
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("restore %s slot: %w", key, err))
		}
	}
	return errs
}

// read takes one snapshot. settled is false when a publish overlapped it.
func (r *DocumentRegistry) read(ctx context.Context) (ref domain.DocumentReference, ok bool, settled bool, err error) {
	before, _, err := r.slot(ctx, GenerationKey)
	if err != nil {
		return domain.DocumentReference{}, false, false, err
	}
	if parseGeneration(before)%2 == 1 {
		return domain.DocumentReference{}, false, false, nil
	}

	contentPath, hasContent, err := r.slot(ctx, ContentPathKey)
	if err != nil {
		return domain.DocumentReference{}, false, false, err
	}
	indexPath, hasIndex, err := r.slot(ctx, IndexPathKey)
	if err != nil {
		return domain.DocumentReference{}, false, false, err
	}

	after, _, err := r.slot(ctx, GenerationKey)
	if err != nil {
		return domain.DocumentReference{}, false, false, err
	}
	if after != before {
		return domain.DocumentReference{}, false, false, nil
	}

	if !hasContent || !hasIndex {
		return domain.DocumentReference{}, false, true, nil
	}
	return domain.DocumentReference{ContentPath: contentPath, IndexPath: indexPath}, true, true, nil
}

func (r *DocumentRegistry) slot(ctx context.Context, key string) (string, bool, error) {
	value, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSessionKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s slot: %w", key, err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", false, nil
	}

	return value, true, nil
}

// parseGeneration treats a missing or unreadable marker as generation 0.
func parseGeneration(raw string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// nextEvenGeneration rounds an odd marker left by a writer that died
// mid-publish up to the next committed value.
func nextEvenGeneration(raw string) uint64 {
	n := parseGeneration(raw)
	if n%2 == 1 {
		n++
	}
	return n
}
