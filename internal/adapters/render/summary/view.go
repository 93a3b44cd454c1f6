package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Width wraps section bodies. Zero leaves them unwrapped.
	Width int
}

// Title and authors share the header; the remaining sections follow in order.
var bodySections = []domain.SectionKind{
	domain.SectionAbstract,
	domain.SectionProblemStatement,
	domain.SectionMethodology,
	domain.SectionKeyResults,
	domain.SectionConclusion,
}

func renderView(record domain.SummaryRecord, opts RenderOptions, s styles) string {
	summary := record.Summary
	lines := []string{
		s.title.Render(fallback(summary.Title, "Untitled paper")),
		s.authors.Render(fallback(summary.Authors, "Unknown authors")),
	}
	if meta := metaLine(record, opts); meta != "" {
		lines = append(lines, s.header.Render(meta))
	}

	for _, kind := range bodySections {
		text, _ := summary.Section(kind)
		lines = append(lines, s.section.Render(renderSection(kind, text, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSection(kind domain.SectionKind, text string, opts RenderOptions, s styles) string {
	body := s.empty.Render("Not available.")
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		style := s.body
		if opts.Width > 0 {
			style = style.Width(opts.Width)
		}
		body = style.Render(trimmed)
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.heading.Render(kind.Label()), body)
}

func metaLine(record domain.SummaryRecord, opts RenderOptions) string {
	parts := make([]string, 0, 2)
	if record.Document.ContentPath != "" {
		parts = append(parts, "document: "+record.Document.ContentPath)
	}
	if !record.CapturedAt.IsZero() {
		parts = append(parts, "summarized "+formatCapturedAt(record.CapturedAt, opts.Now))
	}
	return strings.Join(parts, " | ")
}

func formatCapturedAt(capturedAt, now time.Time) string {
	if now.IsZero() || capturedAt.After(now) {
		return capturedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(capturedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(elapsed.Hours()))
	default:
		return capturedAt.Format("02 Jan 2006 15:04")
	}
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
