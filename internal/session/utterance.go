package session

import (
	"fmt"

	"github.com/abhisek/intervu/internal/gateway"
)

// questionUtterance derives the narration text for a new question.
func questionUtterance(q *gateway.Question) string {
	if q == nil {
		return ""
	}
	if q.Hints != "" {
		return fmt.Sprintf("%s Hint: %s", q.QuestionText, q.Hints)
	}
	return q.QuestionText
}

// feedbackUtterance derives the narration text for received feedback.
func feedbackUtterance(fb *gateway.Feedback) string {
	if fb == nil {
		return ""
	}
	return fmt.Sprintf("You scored %.0f out of 10. %s", fb.ClampedScore(), fb.OverallComments)
}
