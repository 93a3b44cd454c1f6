package ports

import (
	"context"

	"github.com/bnema/researchai-cli/internal/domain"
)

type ProcessingService interface {
	Store(ctx context.Context, file domain.UploadFile) (domain.DocumentReference, error)
	Summarize(ctx context.Context, contentPath string) (domain.Summary, error)
}
