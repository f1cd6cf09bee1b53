package interview

import (
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/speech"
)

// opDoneMsg is sent when a controller operation (submit, next question)
// has resolved. It carries the state snapshot to render.
type opDoneMsg struct {
	op    string // "submit" or "next"
	state session.State
	err   error
}

// dictationMsg reports the outcome of starting dictation.
type dictationMsg struct {
	transcripts <-chan speech.Transcript
	err         error
}

// transcriptMsg delivers one interim transcript. ok is false when the
// stream has closed.
type transcriptMsg struct {
	transcript speech.Transcript
	ok         bool
}
