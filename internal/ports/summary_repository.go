package ports

import (
	"context"

	"github.com/bnema/researchai-cli/internal/domain"
)

type SummaryRepository interface {
	GetByContentPath(ctx context.Context, contentPath string) (domain.SummaryRecord, error)
	List(ctx context.Context) ([]domain.SummaryRecord, error)
	Save(ctx context.Context, record domain.SummaryRecord) error
}
