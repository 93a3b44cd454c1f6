package cmd

import (
	"fmt"

	chattui "github.com/bnema/researchai-cli/internal/adapters/tui/chat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open an interactive chat about the active document",
		Long:  "Open an interactive chat. Questions are answered from the document uploaded in this terminal session, or generically when none is active.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := chattui.Options{}
			ref, ok, err := app.registry.Active(cmd.Context())
			if err != nil {
				app.logger.Warn("read active document for chat failed", zap.Error(err))
			}
			if ok {
				opts.DocumentLabel = ref.ContentPath
			}

			session := app.newChatSession()
			defer session.Close()

			if err := chattui.Run(cmd.Context(), session, opts, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("run chat: %w", err)
			}
			return nil
		},
	}
}
