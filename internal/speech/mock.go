package speech

import (
	"context"
	"sync"
)

// RecordingSpeaker is a Speaker that records utterances for tests.
type RecordingSpeaker struct {
	mu         sync.Mutex
	Utterances []string
	Stopped    int
	Fail       error
}

var _ Speaker = (*RecordingSpeaker)(nil)

func (r *RecordingSpeaker) Speak(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.Utterances = append(r.Utterances, text)
	return nil
}

func (r *RecordingSpeaker) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Stopped++
}

// Spoken returns a copy of the recorded utterances.
func (r *RecordingSpeaker) Spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Utterances...)
}

// ScriptedRecognizer is a Recognizer that replays a fixed transcript.
type ScriptedRecognizer struct {
	Script  []Transcript
	stop    chan struct{}
	stopped sync.Once
}

var _ Recognizer = (*ScriptedRecognizer)(nil)

func (s *ScriptedRecognizer) Start(ctx context.Context) (<-chan Transcript, error) {
	s.stop = make(chan struct{})
	out := make(chan Transcript)
	go func() {
		defer close(out)
		for _, tr := range s.Script {
			select {
			case out <- tr:
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			}
		}
	}()
	return out, nil
}

func (s *ScriptedRecognizer) Stop() error {
	s.stopped.Do(func() {
		if s.stop != nil {
			close(s.stop)
		}
	})
	return nil
}
