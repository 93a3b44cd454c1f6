package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadService drives the store -> summarize sequence and publishes the new
// document into the registry once a complete summary is in hand.
type UploadService struct {
	processing ports.ProcessingService
	registry   *DocumentRegistry
	clock      ports.Clock
	logger     *zap.Logger
}

func NewUploadService(processing ports.ProcessingService, registry *DocumentRegistry, clock ports.Clock, logger *zap.Logger) *UploadService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UploadService{
		processing: processing,
		registry:   registry,
		clock:      clock,
		logger:     logger.With(zap.String("module", "upload")),
	}
}

func (s *UploadService) Submit(ctx context.Context, file domain.UploadFile) (domain.Summary, error) {
	if !file.IsPDF() {
		return domain.Summary{}, fmt.Errorf("%w: %q", domain.ErrInvalidFileType, file.Name)
	}

	log := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("file", file.Name),
		zap.Int("bytes", len(file.Data)),
	)
	started := s.clock.Now()

	ref, err := s.processing.Store(ctx, file)
	if err != nil {
		log.Warn("store document failed", zap.Error(err))
		return domain.Summary{}, fmt.Errorf("%w: %w", domain.ErrUploadTransport, err)
	}
	if !ref.Complete() {
		log.Warn("store response missing document paths", zap.Any("reference", ref))
		return domain.Summary{}, fmt.Errorf("%w: response missing filepath or vector_path", domain.ErrUploadTransport)
	}

	summary, err := s.processing.Summarize(ctx, ref.ContentPath)
	if err != nil {
		log.Warn("summarize document failed", zap.String("content_path", ref.ContentPath), zap.Error(err))
		return domain.Summary{}, fmt.Errorf("%w: %w", domain.ErrSummarizationTransport, err)
	}
	if missing := summary.MissingSections(); len(missing) > 0 {
		log.Warn("summary incomplete", zap.Any("missing", missing))
		return domain.Summary{}, fmt.Errorf("%w: %w: missing %v", domain.ErrSummarizationTransport, domain.ErrIncompleteSummary, missing)
	}

	if err := s.registry.publish(ctx, ref); err != nil {
		log.Error("publish active document failed", zap.Error(err))
		return domain.Summary{}, fmt.Errorf("publish active document: %w", err)
	}

	log.Info("document summarized",
		zap.String("content_path", ref.ContentPath),
		zap.Duration("elapsed", s.clock.Now().Sub(started).Round(time.Millisecond)),
	)

	return summary, nil
}
