package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/ui/theme"
)

// AnswerBox wraps bubbles/textarea for multi-line answer input.
type AnswerBox struct {
	Model     textarea.Model
	Dictating bool
}

// NewAnswerBox creates a styled multi-line input.
func NewAnswerBox(width, height int) AnswerBox {
	ta := textarea.New()
	ta.Placeholder = "Type your answer here..."
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerBox{Model: ta}
}

// Init returns the initial command.
func (a AnswerBox) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerBox) Update(msg tea.Msg) (AnswerBox, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input, with a dictation indicator when active.
func (a AnswerBox) View() string {
	view := a.Model.View()
	if a.Dictating {
		mic := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("● listening")
		view += "\n" + mic
	}
	return view
}

// Value returns the current input value.
func (a AnswerBox) Value() string {
	return a.Model.Value()
}

// Append adds dictated text at the end of the buffer.
func (a *AnswerBox) Append(text string) {
	cur := a.Model.Value()
	if cur != "" && !endsWithSpace(cur) {
		text = " " + text
	}
	// SetValue leaves the cursor at the end of the buffer.
	a.Model.SetValue(cur + text)
}

// Reset clears the buffer.
func (a *AnswerBox) Reset() {
	a.Model.Reset()
}

// SetSize resizes the input area.
func (a *AnswerBox) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == ' ' || last == '\n' || last == '\t'
}
