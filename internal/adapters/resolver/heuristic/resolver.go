package heuristic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
)

type rule struct {
	kind     domain.SectionKind
	keywords []string
}

// Ordered: the first matching rule wins.
var rules = []rule{
	{kind: domain.SectionMethodology, keywords: []string{"method", "approach", "how did", "experiment", "dataset"}},
	{kind: domain.SectionKeyResults, keywords: []string{"result", "finding", "accuracy", "perform", "outcome"}},
	{kind: domain.SectionConclusion, keywords: []string{"conclu", "takeaway", "future work", "limitation"}},
	{kind: domain.SectionProblemStatement, keywords: []string{"problem", "motivation", "why", "challenge"}},
	{kind: domain.SectionAuthors, keywords: []string{"author", "who wrote", "written by"}},
	{kind: domain.SectionTitle, keywords: []string{"title", "called"}},
	{kind: domain.SectionAbstract, keywords: []string{"abstract", "about", "summary", "summarize", "overview"}},
}

// Resolver answers chat questions offline from the stored summary of the active
// document.
type Resolver struct {
	Summaries ports.SummaryRepository
}

var _ ports.ResponseResolver = Resolver{}

func (r Resolver) Resolve(ctx context.Context, question string, doc *domain.DocumentReference) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	question = strings.TrimSpace(question)
	if doc == nil || r.Summaries == nil {
		return domain.GenericAnswer(question), nil
	}

	record, err := r.Summaries.GetByContentPath(ctx, doc.ContentPath)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			return fmt.Sprintf("I don't have a summary for %s yet. Run `rai upload` again to summarize it, then ask about %q.", doc.ContentPath, question), nil
		}
		return "", fmt.Errorf("load summary: %w", err)
	}

	return answerFromSummary(question, record.Summary), nil
}

func answerFromSummary(question string, summary domain.Summary) string {
	kind, ok := match(question)
	if !ok {
		return fmt.Sprintf("%q is about the following.\n\n%s", summary.Title, summary.Abstract)
	}

	text, _ := summary.Section(kind)
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("The summary of %q has no %s section.", summary.Title, strings.ToLower(kind.Label()))
	}

	return fmt.Sprintf("From the %s of %q:\n\n%s", strings.ToLower(kind.Label()), summary.Title, text)
}

func match(question string) (domain.SectionKind, bool) {
	normalized := strings.ToLower(question)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.kind, true
			}
		}
	}
	return "", false
}
