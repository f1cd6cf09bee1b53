package roles

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/screens/interview"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

// startedMsg reports the outcome of a start-interview attempt.
type startedMsg struct {
	state session.State
}

// RolesScreen lets the user pick an interview track and start practicing.
type RolesScreen struct {
	ctrl    *session.Controller
	dict    speech.Recognizer
	menu    components.Menu
	spinner components.Spinner
	loading bool
	errMsg  string
}

var _ screen.Screen = (*RolesScreen)(nil)
var _ screen.KeyHintProvider = (*RolesScreen)(nil)

// New creates the role-selection screen. The recognizer is handed through
// to the interview screen for dictation.
func New(ctrl *session.Controller, dict speech.Recognizer) *RolesScreen {
	s := &RolesScreen{
		ctrl:    ctrl,
		dict:    dict,
		spinner: components.NewSpinner("Fetching your first question..."),
	}

	items := make([]components.MenuItem, 0, len(session.Roles()))
	for _, role := range session.Roles() {
		role := role
		items = append(items, components.MenuItem{
			Label:  role,
			Action: func() tea.Cmd { return s.start(role) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *RolesScreen) Init() tea.Cmd {
	return nil
}

func (s *RolesScreen) Title() string {
	return "Role Selection"
}

func (s *RolesScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start interview"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// start selects the role and kicks off the interview in one transaction.
func (s *RolesScreen) start(role string) tea.Cmd {
	if s.loading {
		return nil
	}
	s.loading = true
	s.errMsg = ""
	s.menu.Frozen = true

	op := func() tea.Msg {
		ctx := context.Background()
		if err := s.ctrl.SelectRole(role); err != nil {
			return startedMsg{state: s.ctrl.Snapshot()}
		}
		_ = s.ctrl.StartInterview(ctx)
		return startedMsg{state: s.ctrl.Snapshot()}
	}
	return tea.Batch(op, s.spinner.Tick())
}

func (s *RolesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.loading = false
		s.menu.Frozen = false
		if msg.state.Screen == session.ScreenInterviewSession {
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: interview.New(s.ctrl, s.dict),
				}
			}
		}
		s.errMsg = msg.state.Err
		return s, nil

	case components.SpinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *RolesScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("AI Interview Prep"),
		theme.Subtitle.Render("Select your role to begin practicing"),
		"",
	)

	sections = append(sections, s.menu.View())

	if s.loading {
		sections = append(sections, s.spinner.View())
	}

	if s.errMsg != "" {
		sections = append(sections, "", theme.ErrorBanner.Render("✗ "+s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
