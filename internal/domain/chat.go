package domain

import (
	"fmt"
	"strings"
	"time"
)

type TurnID uint64

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatTurn struct {
	ID        TurnID
	Text      string
	Role      Role
	Timestamp time.Time
}

type ChatState string

const (
	ChatStateIdle             ChatState = "idle"
	ChatStateAwaitingResponse ChatState = "awaiting_response"
)

func (s ChatState) Label() string {
	switch s {
	case ChatStateIdle:
		return "Idle"
	case ChatStateAwaitingResponse:
		return "Awaiting response"
	default:
		return string(s)
	}
}

// GenericAnswer is the best-effort reply to a question asked while no document
// is active.
func GenericAnswer(question string) string {
	return fmt.Sprintf("That's an interesting question about %q. No research paper is active in this session yet. Upload one with `rai upload <file.pdf>` and I can answer from it.", strings.TrimSpace(question))
}
