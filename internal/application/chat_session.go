package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	GreetingText = "Hello! I'm your AI research assistant. Ask me anything about your uploaded research paper and I'll help you understand the content better."

	DefaultResolverTimeout = 60 * time.Second
)

type ChatSessionOptions struct {
	// ResolverTimeout bounds each resolver call. Zero means DefaultResolverTimeout.
	ResolverTimeout time.Duration
	Clock           ports.Clock
	Logger          *zap.Logger
}

type pendingTurn struct {
	ticket uint64
	cancel context.CancelFunc
}

// ChatSession is an append-only transcript plus the Idle/AwaitingResponse
// state machine. At most one resolver call is outstanding at any time.
type ChatSession struct {
	id       string
	resolver ports.ResponseResolver
	docs     DocumentSource
	clock    ports.Clock
	logger   *zap.Logger
	timeout  time.Duration

	baseCtx    context.Context
	baseCancel context.CancelFunc
	inflight   sync.WaitGroup
	changes    chan struct{}

	mu      sync.Mutex
	turns   []domain.ChatTurn
	lastID  domain.TurnID
	tickets uint64
	pending *pendingTurn
	closed  bool
}

// NewChatSession creates an Idle session seeded with the assistant greeting.
// docs may be nil when no registry is available.
func NewChatSession(resolver ports.ResponseResolver, docs DocumentSource, opts ChatSessionOptions) *ChatSession {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ResolverTimeout <= 0 {
		opts.ResolverTimeout = DefaultResolverTimeout
	}

	id := uuid.NewString()
	baseCtx, baseCancel := context.WithCancel(context.Background())

	s := &ChatSession{
		id:         id,
		resolver:   resolver,
		docs:       docs,
		clock:      opts.Clock,
		logger:     opts.Logger.With(zap.String("module", "chat"), zap.String("session_id", id)),
		timeout:    opts.ResolverTimeout,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		changes:    make(chan struct{}, 1),
	}
	s.turns = []domain.ChatTurn{s.newTurnLocked(domain.RoleAssistant, GreetingText)}

	return s
}

func (s *ChatSession) ID() string {
	return s.id
}

func (s *ChatSession) State() domain.ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// Transcript returns a copy of the turns in arrival order.
func (s *ChatSession) Transcript() []domain.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]domain.ChatTurn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// Changes signals after every transcript or state change. Signals coalesce, so
// receivers should re-read Transcript and State.
func (s *ChatSession) Changes() <-chan struct{} {
	return s.changes
}

// SubmitQuestion appends a user turn and starts resolving it. It reports false
// and changes nothing when text is blank, a response is pending, or the
// session is closed.
func (s *ChatSession) SubmitQuestion(ctx context.Context, text string) bool {
	question := strings.TrimSpace(text)
	if question == "" {
		return false
	}

	s.mu.Lock()
	if s.closed || s.pending != nil {
		s.mu.Unlock()
		return false
	}

	s.turns = append(s.turns, s.newTurnLocked(domain.RoleUser, question))
	s.tickets++
	ticket := s.tickets
	resolveCtx, cancel := context.WithTimeout(s.baseCtx, s.timeout)
	s.pending = &pendingTurn{ticket: ticket, cancel: cancel}
	s.inflight.Add(1)
	s.mu.Unlock()

	s.notify()
	s.logger.Debug("question submitted", zap.Uint64("ticket", ticket))

	go s.resolve(resolveCtx, ctx, ticket, question)

	return true
}

// OnResponse completes the outstanding question with answer. It is a no-op
// when no response is pending.
func (s *ChatSession) OnResponse(answer string) {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return
	}
	s.completeLocked(answer)
	s.mu.Unlock()

	s.notify()
}

// Reset discards any outstanding response and reseeds the greeting. Turn ids
// keep increasing across resets.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.cancel()
		s.pending = nil
	}
	s.turns = []domain.ChatTurn{s.newTurnLocked(domain.RoleAssistant, GreetingText)}
	s.mu.Unlock()

	s.logger.Info("session reset")
	s.notify()
}

// Close cancels any outstanding call, rejects further questions and waits for
// resolver goroutines to return.
func (s *ChatSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.cancel()
		s.pending = nil
	}
	s.mu.Unlock()

	s.baseCancel()
	s.inflight.Wait()
}

func (s *ChatSession) resolve(ctx context.Context, callerCtx context.Context, ticket uint64, question string) {
	defer s.inflight.Done()

	var doc *domain.DocumentReference
	if s.docs != nil {
		ref, ok, err := s.docs.Active(callerCtx)
		switch {
		case err != nil:
			s.logger.Warn("read active document failed, answering without it", zap.Error(err))
		case ok:
			doc = &ref
		}
	}

	answer, err := s.resolver.Resolve(ctx, question, doc)
	if err != nil {
		answer = s.failureAnswer(ctx, ticket, err)
	}

	if !s.complete(ticket, answer) {
		s.logger.Debug("stale response discarded", zap.Uint64("ticket", ticket))
	}
}

func (s *ChatSession) failureAnswer(ctx context.Context, ticket uint64, err error) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warn("resolver timed out",
			zap.Uint64("ticket", ticket),
			zap.Duration("timeout", s.timeout),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrResolverTimeout, err)),
		)
		return fmt.Sprintf("Sorry, I couldn't get an answer within %s. Please try asking again.", s.timeout)
	}

	s.logger.Warn("resolver failed", zap.Uint64("ticket", ticket), zap.Error(fmt.Errorf("%w: %w", domain.ErrResolver, err)))
	return fmt.Sprintf("Sorry, something went wrong while answering your question: %v", err)
}

func (s *ChatSession) complete(ticket uint64, answer string) bool {
	s.mu.Lock()
	if s.pending == nil || s.pending.ticket != ticket {
		s.mu.Unlock()
		return false
	}
	s.completeLocked(answer)
	s.mu.Unlock()

	s.notify()
	return true
}

func (s *ChatSession) completeLocked(answer string) {
	s.pending.cancel()
	s.pending = nil
	s.turns = append(s.turns, s.newTurnLocked(domain.RoleAssistant, answer))
}

func (s *ChatSession) stateLocked() domain.ChatState {
	if s.pending != nil {
		return domain.ChatStateAwaitingResponse
	}
	return domain.ChatStateIdle
}

func (s *ChatSession) newTurnLocked(role domain.Role, text string) domain.ChatTurn {
	s.lastID++
	return domain.ChatTurn{
		ID:        s.lastID,
		Text:      text,
		Role:      role,
		Timestamp: s.clock.Now(),
	}
}

func (s *ChatSession) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
