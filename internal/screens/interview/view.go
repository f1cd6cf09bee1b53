package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/gateway"
	"github.com/abhisek/intervu/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	state := s.ctrl.Snapshot()

	var b strings.Builder

	b.WriteString(s.renderInfoLine(state.SelectedRole, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if state.CurrentQuestion != nil {
		b.WriteString(renderQuestion(state.CurrentQuestion, width))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, "Your answer:"))
	b.WriteString("\n")
	b.WriteString(centerBlock(width, s.answer.View()))
	b.WriteString("\n")

	if s.loading {
		b.WriteString("\n")
		b.WriteString(centerBlock(width, s.spinner.View()))
		b.WriteString("\n")
	}

	if state.CurrentFeedback != nil {
		b.WriteString("\n")
		b.WriteString(renderFeedback(state.CurrentFeedback, width))
	}

	if state.Err != "" {
		b.WriteString("\n")
		b.WriteString(centerBlock(width, theme.ErrorBanner.Render("✗ "+state.Err)))
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, s.notice))
	}

	return b.String()
}

// renderInfoLine shows the practiced role and the feedback state.
func (s *InterviewScreen) renderInfoLine(role string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Role: %s", role))

	rightText := "answer to get feedback"
	if s.dictating {
		rightText = "dictating..."
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightText)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderQuestion renders the question card with its difficulty badge and
// optional hint.
func renderQuestion(q *gateway.Question, width int) string {
	var b strings.Builder

	badge := theme.DifficultyStyle(string(q.Difficulty)).Render("[" + string(q.Difficulty) + "]")
	header := fmt.Sprintf("Question #%d  %s", q.ID, badge)
	b.WriteString(centered(width, theme.Hint.Render(header)))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.QuestionText))

	if q.Hints != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Hint: "+q.Hints)))
	}

	return b.String()
}

// renderFeedback renders the scored evaluation panel.
func renderFeedback(fb *gateway.Feedback, width int) string {
	score := fb.ClampedScore()
	scoreLine := theme.ScoreStyle(score).Render(fmt.Sprintf("Score: %.1f / 10", score))

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("AI Feedback"),
		scoreLine,
		"",
		sectionText("Strengths", fb.Strengths),
		sectionText("Areas for improvement", fb.AreasForImprovement),
		sectionText("Overall", fb.OverallComments),
	}

	card := theme.Card.Width(min(width-8, 88)).Render(strings.Join(sections, "\n"))
	return centerBlock(width, card)
}

func sectionText(label, text string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label+": ") +
		theme.Body.Render(text)
}

func centered(width int, text string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}

// centerBlock centers a multi-line block horizontally.
func centerBlock(width int, block string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
