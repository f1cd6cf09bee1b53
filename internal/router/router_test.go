package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	roles := &stubScreen{title: "roles"}
	r := New(roles)

	interview := &stubScreen{title: "interview"}
	r.Update(PushScreenMsg{Screen: interview})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "interview" {
		t.Errorf("active = %q, want interview", r.Active().Title())
	}
	if !interview.initRan {
		t.Error("pushed screen Init() did not run")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "roles" {
		t.Errorf("active after pop = %q, want roles", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "roles"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (bottom screen cannot be popped)", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	second := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: second})

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 after replace", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("active = %q, want second", r.Active().Title())
	}
	if !second.initRan {
		t.Error("replacement screen Init() did not run")
	}
}
