package ports

import (
	"context"

	"github.com/bnema/researchai-cli/internal/domain"
)

// ResponseResolver answers one chat question. doc is nil when no document is
// active; implementations must still return a best-effort answer then.
type ResponseResolver interface {
	Resolve(ctx context.Context, question string, doc *domain.DocumentReference) (string, error)
}
