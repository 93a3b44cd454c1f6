package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	summaryadapter "github.com/bnema/researchai-cli/internal/adapters/render/summary"
	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type summaryOutput struct {
	Document   domain.DocumentReference `json:"document"`
	Summary    domain.Summary           `json:"summary"`
	CapturedAt string                   `json:"capturedAt,omitempty"`
}

func newUploadCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF research paper and show its summary",
		Long:  "Upload a PDF research paper, wait for the backend to summarize it, and make it the active document for this terminal session.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, app, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runUpload(cmd *cobra.Command, app *app, path string, asJSON bool) error {
	file, err := readUploadFile(path)
	if err != nil {
		return err
	}

	var summary domain.Summary
	work := func(ctx context.Context) error {
		var submitErr error
		summary, submitErr = app.uploads.Submit(ctx, file)
		return submitErr
	}
	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Uploading and summarizing "+file.Name+"...", work); err != nil {
		return uploadError(err)
	}

	ref, _, err := app.registry.Active(cmd.Context())
	if err != nil {
		return fmt.Errorf("read active document: %w", err)
	}

	record := domain.SummaryRecord{Document: ref, Summary: summary, CapturedAt: app.now()}
	if err := app.summaries.Save(cmd.Context(), record); err != nil {
		app.logger.Warn("save summary history failed", zap.String("content_path", ref.ContentPath), zap.Error(err))
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: summary not saved locally: %v\n", err)
	}

	return writeSummaryOutput(cmd, app, record, asJSON)
}

func readUploadFile(path string) (domain.UploadFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	return domain.UploadFile{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFileType):
		return fmt.Errorf("%w: only PDF files are supported", err)
	case errors.Is(err, domain.ErrUploadTransport), errors.Is(err, domain.ErrSummarizationTransport):
		return fmt.Errorf("%w (is the ResearchAI backend running?)", err)
	default:
		return err
	}
}

func writeSummaryOutput(cmd *cobra.Command, app *app, record domain.SummaryRecord, asJSON bool) error {
	if asJSON {
		out := summaryOutput{Document: record.Document, Summary: record.Summary}
		if !record.CapturedAt.IsZero() {
			out.CapturedAt = record.CapturedAt.UTC().Format(time.RFC3339)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.summaryRenderer(record, summaryadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
