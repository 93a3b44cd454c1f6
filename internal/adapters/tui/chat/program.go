package chat

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the chat view until the user quits or ctx ends.
func Run(ctx context.Context, session Session, opts Options, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		New(ctx, session, opts),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
