package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type historyEntry struct {
	Title      string                   `json:"title"`
	Document   domain.DocumentReference `json:"document"`
	CapturedAt string                   `json:"capturedAt,omitempty"`
	Active     bool                     `json:"active"`
}

func newSummaryCmd(app *app) *cobra.Command {
	var (
		asJSON  bool
		history bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the summary of the active document",
		Long:  "Show the summary of the active document. With --history, list every summarized paper, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if history {
				return runSummaryHistory(cmd, app, asJSON)
			}

			ref, ok, err := app.registry.Active(cmd.Context())
			if err != nil {
				return fmt.Errorf("read active document: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w: run `rai upload <file.pdf>` first", domain.ErrNoActiveDocument)
			}

			record, err := app.summaries.GetByContentPath(cmd.Context(), ref.ContentPath)
			if err != nil {
				if errors.Is(err, domain.ErrSummaryNotFound) {
					return fmt.Errorf("%w for %s: upload it again to regenerate", err, ref.ContentPath)
				}
				return fmt.Errorf("load summary: %w", err)
			}

			return writeSummaryOutput(cmd, app, record, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&history, "history", false, "List all summarized papers")

	return cmd
}

func runSummaryHistory(cmd *cobra.Command, app *app, asJSON bool) error {
	records, err := app.summaries.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list summaries: %w", err)
	}

	active, hasActive, err := app.registry.Active(cmd.Context())
	if err != nil {
		app.logger.Warn("read active document for history failed", zap.Error(err))
		hasActive = false
	}

	entries := make([]historyEntry, 0, len(records))
	for _, record := range records {
		entry := historyEntry{
			Title:    record.Summary.Title,
			Document: record.Document,
			Active:   hasActive && record.Document.ContentPath == active.ContentPath,
		}
		if !record.CapturedAt.IsZero() {
			entry.CapturedAt = record.CapturedAt.UTC().Format(time.RFC3339)
		}
		entries = append(entries, entry)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No summaries yet. Run `rai upload <file.pdf>` to add one.")
		return err
	}

	for _, entry := range entries {
		marker := " "
		if entry.Active {
			marker = "*"
		}
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = "Untitled paper"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", marker, entry.CapturedAt, title, entry.Document.ContentPath)
	}

	return nil
}
