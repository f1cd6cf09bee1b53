package speech

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"sync"
)

// ttsCandidates are probed in order when no command is configured.
var ttsCandidates = []string{"say", "espeak-ng", "espeak"}

// CommandSpeaker speaks by shelling out to a text-to-speech binary.
// A new utterance kills the previous one first, mirroring how browser
// speech synthesis cancels before speaking.
type CommandSpeaker struct {
	mu      sync.Mutex
	command string
	current *exec.Cmd
	cancel  context.CancelFunc
}

var _ Speaker = (*CommandSpeaker)(nil)

// NewCommandSpeaker creates a CommandSpeaker using the given binary.
// With an empty command it probes for a known TTS binary on PATH and
// returns ErrUnsupported when none is found.
func NewCommandSpeaker(command string) (*CommandSpeaker, error) {
	if command == "" {
		for _, c := range ttsCandidates {
			if _, err := exec.LookPath(c); err == nil {
				command = c
				break
			}
		}
	}
	if command == "" {
		return nil, ErrUnsupported
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, ErrUnsupported
	}
	return &CommandSpeaker{command: command}, nil
}

// Speak starts the utterance and returns without waiting for it to finish.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	cmdCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(cmdCtx, s.command, text)
	if err := cmd.Start(); err != nil {
		cancel()
		return err
	}
	s.current = cmd
	s.cancel = cancel

	go func() {
		_ = cmd.Wait()
		cancel()
	}()
	return nil
}

// Stop cancels the utterance currently playing, if any.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *CommandSpeaker) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.current = nil
	}
}

// CommandRecognizer runs a speech-to-text command and streams each stdout
// line as an interim transcript until the command exits or Stop is called.
type CommandRecognizer struct {
	mu      sync.Mutex
	command string
	args    []string
	cancel  context.CancelFunc
}

var _ Recognizer = (*CommandRecognizer)(nil)

// NewCommandRecognizer creates a recognizer backed by the given command
// line, e.g. a whisper-style CLI printing transcript lines.
func NewCommandRecognizer(command string, args ...string) (*CommandRecognizer, error) {
	if command == "" {
		return nil, ErrUnsupported
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, ErrUnsupported
	}
	return &CommandRecognizer{command: command, args: args}, nil
}

// Start launches the command and returns the transcript stream.
func (r *CommandRecognizer) Start(ctx context.Context) (<-chan Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return nil, ErrAlreadyListening
	}

	cmdCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(cmdCtx, r.command, r.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, err
	}
	r.cancel = cancel

	out := make(chan Transcript)
	go func() {
		defer close(out)
		defer func() { _ = cmd.Wait() }()

		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- Transcript{Text: line}:
			case <-cmdCtx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Stop kills the recognition process; the transcript channel closes soon
// after.
func (r *CommandRecognizer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	r.cancel = nil
	return nil
}
