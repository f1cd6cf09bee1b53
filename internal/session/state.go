package session

import "github.com/abhisek/intervu/internal/gateway"

// Screen identifies which of the two client screens is active.
type Screen string

const (
	ScreenRoleSelection    Screen = "role_selection"
	ScreenInterviewSession Screen = "interview_session"
)

// offeredRoles is the fixed list of interview tracks.
var offeredRoles = []string{
	"Backend Developer",
	"Frontend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Scientist",
}

// Roles returns the offered interview roles.
func Roles() []string {
	return append([]string(nil), offeredRoles...)
}

// ValidRole reports whether role is one of the offered options.
func ValidRole(role string) bool {
	for _, r := range offeredRoles {
		if r == role {
			return true
		}
	}
	return false
}

// State is the single source of truth for the client-visible session.
// Exactly one of {no question, question only, question+feedback} holds;
// feedback never exists without its question.
type State struct {
	Screen          Screen
	SelectedRole    string
	CurrentQuestion *gateway.Question
	CurrentFeedback *gateway.Feedback
	Loading         bool
	Err             string
}

// newState returns the initial role-selection state.
func newState() State {
	return State{Screen: ScreenRoleSelection}
}
