package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func Execute() error {
	return runRoot(newRootCmd())
}

// runRoot executes rootCmd and releases the wired app whatever the outcome.
func runRoot(rootCmd *cobra.Command, closeApp func() error) error {
	err := rootCmd.Execute()
	if closeErr := closeApp(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close: %w", closeErr))
	}
	return err
}

func newRootCmd() (*cobra.Command, func() error) {
	rootCmd := &cobra.Command{
		Use:           "rai",
		Short:         "ResearchAI CLI (rai): summarize research papers and chat about them",
		Long:          "rai uploads a PDF research paper to the ResearchAI backend, shows its structured summary, and answers questions about it. The uploaded paper stays active for every rai command run from the same terminal window.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd, func() error { return nil }
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newUploadCmd(app),
		newSummaryCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newSessionCmd(app),
	)

	return rootCmd, app.Close
}
