package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances the spinner animation.
type SpinnerTickMsg time.Time

// Spinner is a small loading indicator driven by tick messages.
type Spinner struct {
	frame int
	Label string
}

// NewSpinner creates a spinner with a label shown next to it.
func NewSpinner(label string) Spinner {
	return Spinner{Label: label}
}

// Tick returns the command that keeps the animation running.
func (s Spinner) Tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Update advances the frame on tick.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if _, ok := msg.(SpinnerTickMsg); !ok {
		return s, nil
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s, s.Tick()
}

// View renders the spinner.
func (s Spinner) View() string {
	frame := lipgloss.NewStyle().Foreground(theme.Secondary).Render(spinnerFrames[s.frame])
	if s.Label == "" {
		return frame
	}
	return frame + " " + theme.Hint.Render(s.Label)
}
