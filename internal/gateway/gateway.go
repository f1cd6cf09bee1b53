package gateway

import (
	"context"
	"time"
)

// Gateway is the boundary to the interview backend. It is stateless:
// each call is a single request/response exchange and holds no session
// state on the client.
type Gateway interface {
	// FetchQuestion requests a new interview question for the given role.
	FetchQuestion(ctx context.Context, role string) (*Question, error)

	// SubmitAnswer sends an answer for evaluation and returns the
	// backend's feedback. Repeated submissions are independent requests;
	// no idempotency is provided or assumed.
	SubmitAnswer(ctx context.Context, answer Answer) (*Feedback, error)
}

// Difficulty rates how hard a question is expected to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Question is a backend-generated interview prompt tied to a role.
// Immutable once received; a new fetch supersedes it, never mutates it.
type Question struct {
	ID           int64      `json:"id"`
	Role         string     `json:"role"`
	QuestionText string     `json:"questionText"`
	Hints        string     `json:"hints,omitempty"`
	Difficulty   Difficulty `json:"difficulty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Answer is the user's free-text response to a question. It is built at
// submission time and discarded once the request is issued; QuestionID is
// a weak reference to the question currently on screen.
type Answer struct {
	QuestionID  int64      `json:"questionId"`
	AnswerText  string     `json:"answerText"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// Feedback is the backend's evaluation of a submitted answer.
type Feedback struct {
	ID                  int64     `json:"id"`
	AnswerID            int64     `json:"answerId"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areasForImprovement"`
	OverallComments     string    `json:"overallComments"`
	Score               float64   `json:"score"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// ClampedScore returns the score limited to the displayable 0-10 range.
// The backend is expected to stay in range; out-of-range values are
// advisory and must not break rendering.
func (f *Feedback) ClampedScore() float64 {
	switch {
	case f.Score < 0:
		return 0
	case f.Score > 10:
		return 10
	default:
		return f.Score
	}
}
