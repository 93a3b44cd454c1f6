package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/spf13/cobra"
)

type sessionOutput struct {
	ID       string                    `json:"id"`
	Backend  string                    `json:"backend"`
	Document *domain.DocumentReference `json:"document,omitempty"`
}

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or end the terminal session",
	}

	cmd.AddCommand(newSessionShowCmd(app), newSessionEndCmd(app))

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the session id and active document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := sessionOutput{ID: app.sessionID, Backend: app.sessionBackend}
			ref, ok, err := app.registry.Active(cmd.Context())
			if err != nil {
				return fmt.Errorf("read active document: %w", err)
			}
			if ok {
				out.Document = &ref
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "session: %s\n", out.ID)
			_, _ = fmt.Fprintf(w, "backend: %s\n", out.Backend)
			if out.Document == nil {
				_, err = fmt.Fprintln(w, "document: none")
				return err
			}
			_, _ = fmt.Fprintf(w, "document: %s\n", out.Document.ContentPath)
			_, err = fmt.Fprintf(w, "index: %s\n", out.Document.IndexPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSessionEndCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Forget the active document for this terminal session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.registry.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("end session: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Session ended: no active document.")
			return err
		},
	}
}
