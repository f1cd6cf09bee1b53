package gateway

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingGateway is a decorator that records every backend call.
type LoggingGateway struct {
	inner Gateway
	log   zerolog.Logger
}

var _ Gateway = (*LoggingGateway)(nil)

// WithLogging wraps a Gateway with request/response logging. Logging never
// fails or alters the underlying call.
func WithLogging(g Gateway, log zerolog.Logger) Gateway {
	return &LoggingGateway{inner: g, log: log}
}

func (l *LoggingGateway) FetchQuestion(ctx context.Context, role string) (*Question, error) {
	start := time.Now()
	q, err := l.inner.FetchQuestion(ctx, role)

	ev := l.event(err).
		Str("op", "fetch_question").
		Str("role", role).
		Dur("latency", time.Since(start))
	if q != nil {
		ev = ev.Int64("question_id", q.ID).Str("difficulty", string(q.Difficulty))
	}
	ev.Msg("gateway call")

	return q, err
}

func (l *LoggingGateway) SubmitAnswer(ctx context.Context, answer Answer) (*Feedback, error) {
	start := time.Now()
	fb, err := l.inner.SubmitAnswer(ctx, answer)

	ev := l.event(err).
		Str("op", "submit_answer").
		Int64("question_id", answer.QuestionID).
		Int("answer_len", len(answer.AnswerText)).
		Dur("latency", time.Since(start))
	if fb != nil {
		ev = ev.Float64("score", fb.Score)
	}
	ev.Msg("gateway call")

	return fb, err
}

func (l *LoggingGateway) event(err error) *zerolog.Event {
	if err != nil {
		return l.log.Error().Err(err)
	}
	return l.log.Info()
}
