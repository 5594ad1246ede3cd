package quiz

import (
	"time"

	"github.com/quizmith/quizmith/internal/advisor"
	quizpkg "github.com/quizmith/quizmith/internal/quiz"
)

// questionsLoadedMsg delivers the question batch for a session. The
// session ID lets the state machine drop batches resolved for an
// abandoned session.
type questionsLoadedMsg struct {
	SessionID string
	Questions []quizpkg.Question
}

// advisoryMsg delivers resolved advisory text (or its placeholder).
// A completed call is always logged against its session; Seq must match
// the session's current advisory sequence for the text to be displayed.
type advisoryMsg struct {
	SessionID string
	Seq       int
	Role      advisor.Role
	Text      string
	At        time.Time
}

// responsePersistedMsg confirms a frozen response record reached the store.
type responsePersistedMsg struct {
	Err error
}
