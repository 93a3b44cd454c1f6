package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Session is the part of application.ChatSession the view drives.
type Session interface {
	SubmitQuestion(ctx context.Context, text string) bool
	Transcript() []domain.ChatTurn
	State() domain.ChatState
	Changes() <-chan struct{}
	Reset()
}

type sessionChangedMsg struct{}

type Options struct {
	// DocumentLabel names the active document in the header. Empty means none.
	DocumentLabel string
}

type Model struct {
	ctx     context.Context
	session Session
	opts    Options

	input   textinput.Model
	spinner spinner.Model
	styles  styles

	turns  []domain.ChatTurn
	state  domain.ChatState
	width  int
	height int
}

func New(ctx context.Context, session Session, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Ask a question about your research paper..."
	input.Prompt = "> "
	input.CharLimit = 2000
	input.Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		ctx:     ctx,
		session: session,
		opts:    opts,
		input:   input,
		spinner: s,
		styles:  newStyles(),
		turns:   session.Transcript(),
		state:   session.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForChange(m.session))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case sessionChangedMsg:
		m.turns = m.session.Transcript()
		m.state = m.session.State()
		return m, waitForChange(m.session)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.session.Reset()
			m.turns = m.session.Transcript()
			m.state = m.session.State()
			return m, nil
		case tea.KeyEnter:
			if m.session.SubmitQuestion(m.ctx, m.input.Value()) {
				m.input.Reset()
			}
			m.turns = m.session.Transcript()
			m.state = m.session.State()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.styles.title.Render("ResearchAI chat")
	if m.opts.DocumentLabel != "" {
		header += " " + m.styles.meta.Render("· "+m.opts.DocumentLabel)
	} else {
		header += " " + m.styles.meta.Render("· no document uploaded")
	}

	transcript := m.renderTranscript()

	status := m.styles.meta.Render("enter: send · ctrl+r: new conversation · esc: quit")
	if m.state == domain.ChatStateAwaitingResponse {
		status = fmt.Sprintf("%s %s", m.spinner.View(), m.styles.meta.Render("Thinking..."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", transcript, "", m.input.View(), status)
}

func (m Model) renderTranscript() string {
	blocks := make([]string, 0, len(m.turns))
	for _, turn := range m.turns {
		blocks = append(blocks, m.renderTurn(turn))
	}

	// Keep the newest turns on screen when the window is short.
	if m.height > 0 {
		budget := m.height - 6
		kept := []string{}
		used := 0
		for i := len(blocks) - 1; i >= 0; i-- {
			h := lipgloss.Height(blocks[i])
			if used+h > budget && len(kept) > 0 {
				break
			}
			kept = append([]string{blocks[i]}, kept...)
			used += h
		}
		blocks = kept
	}

	return strings.Join(blocks, "\n")
}

func (m Model) renderTurn(turn domain.ChatTurn) string {
	who := m.styles.assistant.Render("Assistant")
	body := m.styles.body
	if turn.Role == domain.RoleUser {
		who = m.styles.user.Render("You")
		body = m.styles.userBody
	}
	if m.width > 4 {
		body = body.Width(m.width - 2)
	}

	stamp := m.styles.meta.Render(turn.Timestamp.Format("15:04"))
	return lipgloss.JoinVertical(lipgloss.Left, who+" "+stamp, body.Render(turn.Text))
}

func waitForChange(session Session) tea.Cmd {
	return func() tea.Msg {
		<-session.Changes()
		return sessionChangedMsg{}
	}
}
