package interview

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
)

// InterviewScreen runs the question → answer → feedback loop. All session
// state lives in the controller; this screen only renders snapshots and
// forwards intents.
type InterviewScreen struct {
	ctrl *session.Controller
	dict speech.Recognizer

	answer  components.AnswerBox
	spinner components.Spinner

	loading     bool
	dictating   bool
	transcripts <-chan speech.Transcript
	notice      string

	width int
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates the interview screen. The controller must already hold a
// loaded question.
func New(ctrl *session.Controller, dict speech.Recognizer) *InterviewScreen {
	if dict == nil {
		dict = speech.NoopRecognizer{}
	}
	return &InterviewScreen{
		ctrl:    ctrl,
		dict:    dict,
		answer:  components.NewAnswerBox(72, 6),
		spinner: components.NewSpinner("Waiting for the backend..."),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.answer.Init()
}

func (s *InterviewScreen) Title() string {
	return "Interview Session"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+N", Description: "Next question"},
	}
	if s.dictating {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Stop dictation"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Dictate"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		w := msg.Width - 8
		if w > 90 {
			w = 90
		}
		if w > 0 {
			s.answer.SetSize(w, 6)
		}
		return s, nil

	case opDoneMsg:
		return s.handleOpDone(msg)

	case dictationMsg:
		return s.handleDictationStarted(msg)

	case transcriptMsg:
		return s.handleTranscript(msg)

	case components.SpinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	switch msg.String() {
	case "ctrl+s":
		return s, s.submit()
	case "ctrl+n":
		return s, s.next()
	case "ctrl+d":
		return s, s.toggleDictation()
	case "esc":
		return s.back()
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

// submit sends the typed answer. Blank input is ignored, matching a
// disabled submit button.
func (s *InterviewScreen) submit() tea.Cmd {
	text := s.answer.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	s.loading = true
	s.notice = ""

	op := func() tea.Msg {
		err := s.ctrl.SubmitAnswer(context.Background(), text)
		return opDoneMsg{op: "submit", state: s.ctrl.Snapshot(), err: err}
	}
	return tea.Batch(op, s.spinner.Tick())
}

func (s *InterviewScreen) next() tea.Cmd {
	s.loading = true
	s.notice = ""

	op := func() tea.Msg {
		err := s.ctrl.NextQuestion(context.Background())
		return opDoneMsg{op: "next", state: s.ctrl.Snapshot(), err: err}
	}
	return tea.Batch(op, s.spinner.Tick())
}

func (s *InterviewScreen) back() (screen.Screen, tea.Cmd) {
	s.stopDictation()
	if err := s.ctrl.BackToRoleSelection(); err != nil {
		// A call is still in flight; stay put.
		return s, nil
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *InterviewScreen) handleOpDone(msg opDoneMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.err == nil {
		// Accepted submit or a fresh question: the buffer is no longer
		// unsent input. On failure it stays put for a retry.
		s.answer.Reset()
	}
	return s, nil
}

func (s *InterviewScreen) toggleDictation() tea.Cmd {
	if s.dictating {
		s.stopDictation()
		return nil
	}
	return func() tea.Msg {
		ch, err := s.dict.Start(context.Background())
		return dictationMsg{transcripts: ch, err: err}
	}
}

func (s *InterviewScreen) stopDictation() {
	if s.dictating {
		_ = s.dict.Stop()
		s.dictating = false
		s.transcripts = nil
		s.answer.Dictating = false
	}
}

func (s *InterviewScreen) handleDictationStarted(msg dictationMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, speech.ErrUnsupported) {
			s.notice = "Dictation is not available on this system."
		} else {
			s.notice = "Could not start dictation."
		}
		return s, nil
	}
	s.dictating = true
	s.transcripts = msg.transcripts
	s.answer.Dictating = true
	return s, waitTranscript(msg.transcripts)
}

func (s *InterviewScreen) handleTranscript(msg transcriptMsg) (screen.Screen, tea.Cmd) {
	if !msg.ok {
		s.stopDictation()
		return s, nil
	}
	s.answer.Append(msg.transcript.Text)
	return s, waitTranscript(s.transcripts)
}

// waitTranscript blocks on the transcript stream and forwards one result.
func waitTranscript(ch <-chan speech.Transcript) tea.Cmd {
	return func() tea.Msg {
		tr, ok := <-ch
		return transcriptMsg{transcript: tr, ok: ok}
	}
}
