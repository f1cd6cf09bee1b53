package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/intervu/internal/gateway"
	"github.com/abhisek/intervu/internal/speech"
)

func testQuestion(id int64) *gateway.Question {
	return &gateway.Question{
		ID:           id,
		Role:         "Backend Developer",
		QuestionText: "Explain REST",
		Hints:        "Think about HTTP verbs",
		Difficulty:   gateway.DifficultyEasy,
		CreatedAt:    time.Now(),
	}
}

func testFeedback(score float64) *gateway.Feedback {
	return &gateway.Feedback{
		ID:                  42,
		AnswerID:            7,
		Strengths:           "clear",
		AreasForImprovement: "add examples",
		OverallComments:     "good",
		Score:               score,
		GeneratedAt:         time.Now(),
	}
}

func startedController(t *testing.T, results ...gateway.MockResult) (*Controller, *gateway.MockGateway) {
	t.Helper()
	gw := gateway.NewMockGateway(results...)
	c := NewController(gw)
	if err := c.SelectRole("Backend Developer"); err != nil {
		t.Fatal(err)
	}
	if err := c.StartInterview(context.Background()); err != nil {
		t.Fatal(err)
	}
	return c, gw
}

func TestStartInterview_Success(t *testing.T) {
	for _, role := range Roles() {
		gw := gateway.NewMockGateway(gateway.MockResult{Question: testQuestion(1)})
		c := NewController(gw)

		if err := c.SelectRole(role); err != nil {
			t.Fatalf("SelectRole(%q): %v", role, err)
		}
		if err := c.StartInterview(context.Background()); err != nil {
			t.Fatalf("StartInterview: %v", err)
		}

		s := c.Snapshot()
		if s.Screen != ScreenInterviewSession {
			t.Errorf("Screen = %q, want interview session", s.Screen)
		}
		if s.CurrentQuestion == nil {
			t.Fatal("CurrentQuestion not set")
		}
		if s.CurrentFeedback != nil {
			t.Error("CurrentFeedback should be unset after start")
		}
		if s.Loading {
			t.Error("Loading should be false after the call resolves")
		}
		if gw.Calls[0].Role != role {
			t.Errorf("fetched role %q, want %q", gw.Calls[0].Role, role)
		}
	}
}

func TestStartInterview_EmptyRole(t *testing.T) {
	gw := gateway.NewMockGateway(gateway.MockResult{Question: testQuestion(1)})
	c := NewController(gw)

	err := c.StartInterview(context.Background())

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if gw.CallCount() != 0 {
		t.Error("gateway must not be called without a role")
	}
	s := c.Snapshot()
	if s.Screen != ScreenRoleSelection {
		t.Error("screen must stay on role selection")
	}
	if s.Err == "" {
		t.Error("a validation error must be user-visible")
	}
}

func TestStartInterview_GatewayFailure(t *testing.T) {
	gw := gateway.NewMockGateway(gateway.MockResult{
		Err: &gateway.NetworkError{Op: "fetch question", Err: errors.New("connection refused")},
	})
	c := NewController(gw)
	_ = c.SelectRole("Backend Developer")

	err := c.StartInterview(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	s := c.Snapshot()
	if s.Screen != ScreenRoleSelection {
		t.Error("screen must stay on role selection after a failed fetch")
	}
	if s.CurrentQuestion != nil {
		t.Error("question must stay unset")
	}
	if s.Err == "" {
		t.Error("error must be surfaced as a display string")
	}
	if s.Loading {
		t.Error("loading must clear after failure")
	}
}

func TestSubmitAnswer_BlankIsNoop(t *testing.T) {
	c, gw := startedController(t, gateway.MockResult{Question: testQuestion(1)})
	before := c.Snapshot()
	callsBefore := gw.CallCount()

	for _, blank := range []string{"", "   ", "\n\t "} {
		if err := c.SubmitAnswer(context.Background(), blank); err != nil {
			t.Errorf("SubmitAnswer(%q) = %v, want silent no-op", blank, err)
		}
	}

	if gw.CallCount() != callsBefore {
		t.Error("blank input must not reach the gateway")
	}
	if c.Snapshot() != before {
		t.Error("blank input must not change state")
	}
}

func TestSubmitAnswer_Success(t *testing.T) {
	c, gw := startedController(t,
		gateway.MockResult{Question: testQuestion(5)},
		gateway.MockResult{Feedback: testFeedback(7)},
	)

	if err := c.SubmitAnswer(context.Background(), "  REST uses HTTP verbs  "); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.CurrentFeedback == nil {
		t.Fatal("CurrentFeedback not set")
	}
	if s.CurrentFeedback.Score != 7 {
		t.Errorf("Score = %v, want 7", s.CurrentFeedback.Score)
	}
	if s.Screen != ScreenInterviewSession {
		t.Error("screen must remain interview session")
	}

	submitted := gw.Calls[len(gw.Calls)-1]
	if submitted.Op != "submit" {
		t.Fatalf("last call = %q, want submit", submitted.Op)
	}
	if submitted.Answer.QuestionID != 5 {
		t.Errorf("answer references question %d, want 5", submitted.Answer.QuestionID)
	}
	if submitted.Answer.AnswerText != "REST uses HTTP verbs" {
		t.Errorf("answer text %q not trimmed", submitted.Answer.AnswerText)
	}
}

func TestSubmitAnswer_FailureKeepsQuestion(t *testing.T) {
	c, _ := startedController(t,
		gateway.MockResult{Question: testQuestion(5)},
		gateway.MockResult{Err: &gateway.NetworkError{Op: "submit answer", Status: 502}},
	)

	err := c.SubmitAnswer(context.Background(), "an answer")
	if err == nil {
		t.Fatal("expected error")
	}

	s := c.Snapshot()
	if s.CurrentFeedback != nil {
		t.Error("feedback must stay unset so the user can retry")
	}
	if s.CurrentQuestion == nil || s.CurrentQuestion.ID != 5 {
		t.Error("question must remain loaded after a failed submit")
	}
	if s.Err == "" {
		t.Error("error must be surfaced")
	}
}

func TestSubmitAnswer_NoQuestionLoaded(t *testing.T) {
	gw := gateway.NewMockGateway()
	c := NewController(gw)

	err := c.SubmitAnswer(context.Background(), "answer without question")

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if gw.CallCount() != 0 {
		t.Error("gateway must not be called without a loaded question")
	}
}

func TestNextQuestion_ClearsFeedback(t *testing.T) {
	c, _ := startedController(t,
		gateway.MockResult{Question: testQuestion(1)},
		gateway.MockResult{Feedback: testFeedback(9)},
		gateway.MockResult{Question: testQuestion(2)},
	)
	if err := c.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatal(err)
	}

	if err := c.NextQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.CurrentFeedback != nil {
		t.Error("feedback must be cleared by next question")
	}
	if s.CurrentQuestion == nil || s.CurrentQuestion.ID != 2 {
		t.Errorf("question not replaced, got %+v", s.CurrentQuestion)
	}
}

func TestNextQuestion_FailureRetainsPreviousQuestion(t *testing.T) {
	c, _ := startedController(t,
		gateway.MockResult{Question: testQuestion(1)},
		gateway.MockResult{Feedback: testFeedback(6)},
		gateway.MockResult{Err: &gateway.NetworkError{Op: "fetch question", Status: 500}},
	)
	if err := c.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatal(err)
	}

	err := c.NextQuestion(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	s := c.Snapshot()
	if s.CurrentQuestion == nil || s.CurrentQuestion.ID != 1 {
		t.Error("previous question must remain displayed after a failed fetch")
	}
	if s.CurrentFeedback != nil {
		t.Error("feedback is cleared when the next cycle starts, even on failure")
	}
	if s.Err == "" {
		t.Error("error must be surfaced")
	}
}

func TestBackToRoleSelection_ResetsEverything(t *testing.T) {
	c, _ := startedController(t,
		gateway.MockResult{Question: testQuestion(1)},
		gateway.MockResult{Feedback: testFeedback(8)},
	)
	if err := c.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatal(err)
	}

	if err := c.BackToRoleSelection(); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.Screen != ScreenRoleSelection {
		t.Error("screen must return to role selection")
	}
	if s.SelectedRole != "" || s.CurrentQuestion != nil || s.CurrentFeedback != nil || s.Err != "" {
		t.Errorf("state not fully reset: %+v", s)
	}
}

func TestSelectRole_Unknown(t *testing.T) {
	c := NewController(gateway.NewMockGateway())

	err := c.SelectRole("Astronaut")

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if c.Snapshot().SelectedRole != "" {
		t.Error("unknown role must not be stored")
	}
}

func TestNewOperationClearsPriorError(t *testing.T) {
	c, _ := startedController(t,
		gateway.MockResult{Question: testQuestion(1)},
		gateway.MockResult{Err: &gateway.NetworkError{Op: "submit answer", Status: 500}},
		gateway.MockResult{Feedback: testFeedback(5)},
	)

	_ = c.SubmitAnswer(context.Background(), "first try")
	if c.Snapshot().Err == "" {
		t.Fatal("precondition: error set")
	}

	if err := c.SubmitAnswer(context.Background(), "second try"); err != nil {
		t.Fatal(err)
	}
	if s := c.Snapshot(); s.Err != "" {
		t.Errorf("new operation must clear the previous error, got %q", s.Err)
	}
}

// blockingGateway parks FetchQuestion until released, to probe the
// one-in-flight guard.
type blockingGateway struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingGateway) FetchQuestion(context.Context, string) (*gateway.Question, error) {
	close(b.started)
	<-b.release
	return testQuestion(1), nil
}

func (b *blockingGateway) SubmitAnswer(context.Context, gateway.Answer) (*gateway.Feedback, error) {
	return nil, errors.New("unexpected")
}

func TestRejectsOverlappingOperations(t *testing.T) {
	bg := &blockingGateway{started: make(chan struct{}), release: make(chan struct{})}
	c := NewController(bg)
	_ = c.SelectRole("Backend Developer")

	done := make(chan error, 1)
	go func() { done <- c.StartInterview(context.Background()) }()
	<-bg.started

	if err := c.SubmitAnswer(context.Background(), "too eager"); !errors.Is(err, ErrBusy) {
		t.Errorf("SubmitAnswer while loading = %v, want ErrBusy", err)
	}
	if err := c.NextQuestion(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("NextQuestion while loading = %v, want ErrBusy", err)
	}
	if err := c.BackToRoleSelection(); !errors.Is(err, ErrBusy) {
		t.Errorf("BackToRoleSelection while loading = %v, want ErrBusy", err)
	}

	close(bg.release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight operation failed: %v", err)
	}
	if c.Snapshot().Screen != ScreenInterviewSession {
		t.Error("in-flight operation must complete normally")
	}
}

func TestListenerObservesLoadingTransitions(t *testing.T) {
	gw := gateway.NewMockGateway(gateway.MockResult{Question: testQuestion(1)})
	var states []State
	c := NewController(gw, WithListener(func(s State) {
		states = append(states, s)
	}))
	_ = c.SelectRole("Data Scientist")
	if err := c.StartInterview(context.Background()); err != nil {
		t.Fatal(err)
	}

	var sawLoading, sawSettled bool
	for _, s := range states {
		if s.Loading {
			sawLoading = true
		}
		if !s.Loading && s.Screen == ScreenInterviewSession {
			sawSettled = true
		}
	}
	if !sawLoading {
		t.Error("listener should observe the loading state")
	}
	if !sawSettled {
		t.Error("listener should observe the settled interview state")
	}
}

func TestNarration(t *testing.T) {
	spk := &speech.RecordingSpeaker{}
	gw := gateway.NewMockGateway(
		gateway.MockResult{Question: testQuestion(1)},
		gateway.MockResult{Feedback: testFeedback(7)},
	)
	c := NewController(gw, WithSpeaker(spk))
	_ = c.SelectRole("Backend Developer")
	if err := c.StartInterview(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.SubmitAnswer(context.Background(), "REST uses HTTP verbs"); err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool { return len(spk.Spoken()) >= 2 })

	// Narration is asynchronous, so assert presence rather than order.
	spoken := spk.Spoken()
	want := map[string]bool{
		"Explain REST Hint: Think about HTTP verbs": false,
		"You scored 7 out of 10. good":              false,
	}
	for _, u := range spoken {
		if _, ok := want[u]; ok {
			want[u] = true
		}
	}
	for u, seen := range want {
		if !seen {
			t.Errorf("missing utterance %q in %v", u, spoken)
		}
	}
}

func TestNarrationFailureDoesNotAffectTransitions(t *testing.T) {
	spk := &speech.RecordingSpeaker{Fail: errors.New("no audio device")}
	gw := gateway.NewMockGateway(gateway.MockResult{Question: testQuestion(1)})
	c := NewController(gw, WithSpeaker(spk))
	_ = c.SelectRole("Backend Developer")

	if err := c.StartInterview(context.Background()); err != nil {
		t.Fatalf("speaker failure must not fail the transition: %v", err)
	}
	if c.Snapshot().Screen != ScreenInterviewSession {
		t.Error("transition must complete despite narration failure")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
