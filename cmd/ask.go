package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/researchai-cli/internal/application"
	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/spf13/cobra"
)

type askOutput struct {
	Question string                    `json:"question"`
	Answer   string                    `json:"answer"`
	Document *domain.DocumentReference `json:"document,omitempty"`
}

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a single question about the active document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return errors.New("question is required")
			}

			session := app.newChatSession()
			defer session.Close()

			var answer string
			work := func(ctx context.Context) error {
				var askErr error
				answer, askErr = askOnce(ctx, session, question)
				return askErr
			}
			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Thinking...", work); err != nil {
				return err
			}

			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), answer)
				return err
			}

			out := askOutput{Question: question, Answer: answer}
			ref, ok, err := app.registry.Active(cmd.Context())
			if err != nil {
				return fmt.Errorf("read active document: %w", err)
			}
			if ok {
				out.Document = &ref
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// askOnce submits question and blocks until the session settles back to idle.
func askOnce(ctx context.Context, session *application.ChatSession, question string) (string, error) {
	if !session.SubmitQuestion(ctx, question) {
		return "", errors.New("chat session is not accepting questions")
	}

	for session.State() != domain.ChatStateIdle {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-session.Changes():
		}
	}

	turns := session.Transcript()
	last := turns[len(turns)-1]
	if last.Role != domain.RoleAssistant {
		return "", errors.New("chat session ended without an answer")
	}

	return last.Text, nil
}
