package chat

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kdduha/sceramath/pkg/client"
)

var (
	ErrEmptySubmission = errors.New("nothing to submit")
	ErrBusy            = errors.New("a submission is already in flight")
	ErrNoSolution      = errors.New("dispatcher returned no solution")
)

type Dispatcher interface {
	Solve(ctx context.Context, prompt, image string) (*client.MathSolution, error)
}

// Session owns a transcript and allows one outstanding submission at a time.
type Session struct {
	ID string

	dispatcher Dispatcher
	now        func() time.Time
	inFlight   atomic.Bool

	mu       sync.Mutex
	messages []ChatMessage
	seq      int64
}

func NewSession(id string, dispatcher Dispatcher) *Session {
	return &Session{
		ID:         id,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Submit appends the user message, waits for the dispatcher and appends exactly one
// assistant message. A failed dispatch is recorded, not rolled back, and its error returned.
func (s *Session) Submit(ctx context.Context, prompt, image string) (ChatMessage, error) {
	if strings.TrimSpace(prompt) == "" && image == "" {
		return ChatMessage{}, ErrEmptySubmission
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return ChatMessage{}, ErrBusy
	}
	defer s.inFlight.Store(false)

	s.append(ChatMessage{Role: RoleUser, Content: prompt, Image: image})

	query := prompt
	if strings.TrimSpace(query) == "" {
		query = DefaultPrompt
	}

	solution, err := s.dispatcher.Solve(ctx, query, image)
	if err == nil && solution == nil {
		err = ErrNoSolution
	}
	if err != nil {
		return s.append(ChatMessage{Role: RoleAssistant, Content: SynthesisFailed}), err
	}
	return s.append(ChatMessage{Role: RoleAssistant, Content: AnalysisComplete, Solution: solution}), nil
}

func (s *Session) Busy() bool {
	return s.inFlight.Load()
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *Session) append(m ChatMessage) ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.seq++
	m.ID = strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.FormatInt(s.seq, 10)
	m.Timestamp = now.UnixMilli()
	s.messages = append(s.messages, m)
	return m
}
