package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/intervu/internal/gateway"
	"github.com/abhisek/intervu/internal/speech"
)

// Controller owns session state and enforces the legal sequencing of
// operations. Each operation is a single transaction: guard, mark loading,
// one blocking gateway call, apply the result, notify.
//
// Overlap is rejected at this boundary with ErrBusy, so the one-in-flight
// invariant holds even when the presentation layer forgets to disable its
// controls.
type Controller struct {
	mu        sync.Mutex
	state     State
	gw        gateway.Gateway
	speaker   speech.Speaker
	log       zerolog.Logger
	listener  func(State)
	sessionID string
}

// Option customizes a Controller.
type Option func(*Controller)

// WithSpeaker attaches a narration speaker. Speaker failures are logged
// and never affect transitions.
func WithSpeaker(s speech.Speaker) Option {
	return func(c *Controller) { c.speaker = s }
}

// WithLogger attaches a logger for gateway failures and narration errors.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithListener registers an observer called with a state copy after every
// applied transition.
func WithListener(fn func(State)) Option {
	return func(c *Controller) { c.listener = fn }
}

// NewController creates a Controller in the role-selection state.
func NewController(gw gateway.Gateway, opts ...Option) *Controller {
	c := &Controller{
		state:     newState(),
		gw:        gw,
		speaker:   speech.NoopSpeaker{},
		log:       zerolog.Nop(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID identifies this controller instance for log correlation.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Snapshot returns a copy of the current state. Question and Feedback are
// immutable once received, so sharing the pointers is safe.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectRole stores the chosen role. Rejected while a call is in flight;
// an unknown role is a validation error.
func (c *Controller) SelectRole(role string) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	if role != "" && !ValidRole(role) {
		c.state.Err = msgUnknownRole
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
		return &ValidationError{Reason: "unknown role: " + role}
	}
	c.state.SelectedRole = role
	c.state.Err = ""
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

// StartInterview fetches the first question for the selected role and
// moves to the interview screen. With no role selected it fails without a
// network call; on gateway failure the screen stays on role selection.
func (c *Controller) StartInterview(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state.SelectedRole == "" {
		c.state.Err = msgRoleRequired
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
		return &ValidationError{Reason: "role required"}
	}
	role := c.state.SelectedRole
	c.state.Loading = true
	c.state.Err = ""
	c.state.CurrentFeedback = nil
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)

	q, err := c.gw.FetchQuestion(ctx, role)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		c.log.Error().Err(err).Str("session_id", c.sessionID).Str("role", role).Msg("start interview failed")
		c.state.Err = msgFetchFailed
		snap = c.state
		c.mu.Unlock()
		c.notify(snap)
		return err
	}
	c.state.CurrentQuestion = q
	c.state.CurrentFeedback = nil
	c.state.Screen = ScreenInterviewSession
	snap = c.state
	c.mu.Unlock()
	c.notify(snap)

	c.narrate(ctx, questionUtterance(q))
	return nil
}

// SubmitAnswer sends the answer for the question on screen and stores the
// returned feedback. Blank input is a silent no-op; a failed submission
// keeps the question loaded so the user can retry without retyping.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	if trimmed == "" {
		// Matches a disabled submit button: nothing happens.
		c.mu.Unlock()
		return nil
	}
	if c.state.CurrentQuestion == nil {
		c.state.Err = msgNoQuestion
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
		return &ValidationError{Reason: "no question loaded"}
	}
	questionID := c.state.CurrentQuestion.ID
	c.state.Loading = true
	c.state.Err = ""
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)

	fb, err := c.gw.SubmitAnswer(ctx, gateway.Answer{
		QuestionID: questionID,
		AnswerText: trimmed,
	})

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		c.log.Error().Err(err).Str("session_id", c.sessionID).Int64("question_id", questionID).Msg("submit answer failed")
		c.state.Err = msgSubmitFailed
		snap = c.state
		c.mu.Unlock()
		c.notify(snap)
		return err
	}
	c.state.CurrentFeedback = fb
	snap = c.state
	c.mu.Unlock()
	c.notify(snap)

	c.narrate(ctx, feedbackUtterance(fb))
	return nil
}

// NextQuestion discards current feedback and fetches a new question for
// the same role. On failure the previous question stays on screen so the
// user is not stranded.
func (c *Controller) NextQuestion(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state.SelectedRole == "" {
		c.state.Err = msgRoleRequired
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
		return &ValidationError{Reason: "role required"}
	}
	role := c.state.SelectedRole
	c.state.Loading = true
	c.state.Err = ""
	c.state.CurrentFeedback = nil
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)

	q, err := c.gw.FetchQuestion(ctx, role)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		c.log.Error().Err(err).Str("session_id", c.sessionID).Str("role", role).Msg("next question failed")
		c.state.Err = msgNextFetchFailed
		snap = c.state
		c.mu.Unlock()
		c.notify(snap)
		return err
	}
	c.state.CurrentQuestion = q
	snap = c.state
	c.mu.Unlock()
	c.notify(snap)

	c.narrate(ctx, questionUtterance(q))
	return nil
}

// BackToRoleSelection resets everything and returns to role selection.
// No network call. Rejected only while a call is in flight, so a late
// result cannot land on freshly reset state.
func (c *Controller) BackToRoleSelection() error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = newState()
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)

	c.speaker.Stop()
	return nil
}

func (c *Controller) notify(snap State) {
	if c.listener != nil {
		c.listener(snap)
	}
}

// narrate speaks asynchronously; narration must never block or fail a
// transition.
func (c *Controller) narrate(ctx context.Context, text string) {
	if text == "" {
		return
	}
	go func() {
		if err := c.speaker.Speak(ctx, text); err != nil {
			c.log.Warn().Err(err).Msg("narration failed")
		}
	}()
}
