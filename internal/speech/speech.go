// Package speech models optional voice capabilities: a Speaker that reads
// text aloud and a Recognizer that streams dictated transcripts. Both are
// best-effort collaborators; when unavailable the application degrades to
// silent, typed interaction.
package speech

import (
	"context"
	"errors"
)

// ErrUnsupported signals that no speech capability is available on this
// system. Callers treat it as "degrade gracefully", never as a failure.
var ErrUnsupported = errors.New("speech: not supported on this system")

// ErrAlreadyListening signals a Start while recognition is already active.
var ErrAlreadyListening = errors.New("speech: recognition already active")

// Speaker speaks an utterance asynchronously. Starting a new utterance
// cancels any one still playing.
type Speaker interface {
	Speak(ctx context.Context, text string) error
	Stop()
}

// Transcript is one interim dictation result.
type Transcript struct {
	Text  string
	Final bool
}

// Recognizer streams interim transcripts while active. Start returns a
// channel that is closed when recognition ends; Stop ends it explicitly.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Transcript, error)
	Stop() error
}

// NoopSpeaker is a Speaker that does nothing.
type NoopSpeaker struct{}

func (NoopSpeaker) Speak(context.Context, string) error { return nil }
func (NoopSpeaker) Stop()                               {}

// NoopRecognizer is a Recognizer that reports ErrUnsupported.
type NoopRecognizer struct{}

func (NoopRecognizer) Start(context.Context) (<-chan Transcript, error) {
	return nil, ErrUnsupported
}
func (NoopRecognizer) Stop() error { return nil }
