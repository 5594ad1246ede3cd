// Package session owns the per-question phase pipeline of a quiz run.
// All mutation goes through Apply; the Bubble Tea update loop is the
// single writer, so no locking is needed.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/schedule"
)

// Phase is the current step of the per-question pipeline. It is the sole
// source of truth for what the learner is doing; nothing is derived from
// overlapping booleans.
type Phase int

const (
	// PhaseInit is the pre-session state: waiting for a topic.
	PhaseInit Phase = iota

	// PhaseLoadingQuestions means the question batch is being fetched.
	PhaseLoadingQuestions

	// PhaseUnderstanding asks the learner whether they understand the question.
	PhaseUnderstanding

	// PhaseComprehension shows coaching text until the learner acknowledges.
	PhaseComprehension

	// PhaseAnswering is option selection and answer submission.
	PhaseAnswering

	// PhaseConfidence collects the 1-3 confidence rating.
	PhaseConfidence

	// PhaseDepthCheck collects the glanced/understood self-report.
	PhaseDepthCheck

	// PhaseCorrection shows corrective feedback after a wrong answer.
	PhaseCorrection

	// PhaseReflection collects free-text reflection.
	PhaseReflection

	// PhaseScheduler collects the review delivery mode.
	PhaseScheduler

	// PhaseComplete is terminal: every question has been answered.
	PhaseComplete
)

var phaseNames = map[Phase]string{
	PhaseInit:             "init",
	PhaseLoadingQuestions: "loading-questions",
	PhaseUnderstanding:    "understanding",
	PhaseComprehension:    "comprehension",
	PhaseAnswering:        "answering",
	PhaseConfidence:       "confidence",
	PhaseDepthCheck:       "depth-check",
	PhaseCorrection:       "correction",
	PhaseReflection:       "reflection",
	PhaseScheduler:        "scheduler",
	PhaseComplete:         "complete",
}

func (p Phase) String() string {
	if n, ok := phaseNames[p]; ok {
		return n
	}
	return "unknown"
}

// DepthCheck is the learner's self-report before evaluation: did they
// glance over every option, and did they understand them all.
type DepthCheck struct {
	Glanced    bool
	Understood bool
}

// Thorough reports whether both checks passed. Anything less sends the
// learner back to comprehension coaching.
func (d DepthCheck) Thorough() bool {
	return d.Glanced && d.Understood
}

// Response is the frozen snapshot of one completed question, built from
// the working fields at advance time. Append-only.
type Response struct {
	QuestionIndex int
	Question      string
	Selected      quiz.Letter
	Correct       quiz.Letter
	Outcome       quiz.Outcome
	Confidence    schedule.Confidence
	Reflection    string
	Review        *schedule.Review
}

// InteractionEntry is one advisory call recorded in the audit trail,
// placeholder substitutions included.
type InteractionEntry struct {
	At      time.Time
	Role    string
	Message string
}

// State is the single mutable aggregate for one quiz session.
type State struct {
	// ID identifies this session. Late-arriving results from an
	// abandoned session carry a different ID and are dropped.
	ID string

	// Topic is the learner-supplied topic. Empty means the default
	// question set is used.
	Topic string

	// Questions is fixed once loaded for the session.
	Questions []quiz.Question

	// CurrentIndex is the question being worked on.
	// CurrentIndex == len(Questions) marks session completion.
	CurrentIndex int

	// Phase is the current pipeline step.
	Phase Phase

	// Working fields, cleared on every question advance.
	Understood     *bool
	SelectedOption quiz.Letter
	Confidence     schedule.Confidence
	DepthCheck     *DepthCheck
	Outcome        quiz.Outcome
	ReflectionText string
	ReviewSchedule *schedule.Review

	// AdvisoryText is the most recent advisory result (or placeholder).
	AdvisoryText string

	// AdvisoryPending is true while an advisory call is in flight.
	AdvisoryPending bool

	// AdvisorySeq increments per advisory call issued. A resolution
	// carrying an older sequence is stale and ignored.
	AdvisorySeq int

	// Responses holds one frozen record per finished question.
	Responses []Response

	// InteractionLog records every advisory call, in order.
	InteractionLog []InteractionEntry
}

// NewState creates a fresh session in PhaseInit with its own identity.
// Resetting a session means discarding the old State and calling this
// again; the new ID invalidates any outstanding calls.
func NewState() *State {
	return &State{
		ID:    uuid.New().String(),
		Phase: PhaseInit,
	}
}

// CurrentQuestion returns the active question, or false once the session
// is complete (or questions have not loaded yet).
func (s *State) CurrentQuestion() (quiz.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Complete reports whether every question has been advanced past.
func (s *State) Complete() bool {
	return s.Phase == PhaseComplete
}

// clearWorkingFields resets the per-question scratch data. Called exactly
// once per advance.
func (s *State) clearWorkingFields() {
	s.Understood = nil
	s.SelectedOption = ""
	s.Confidence = ""
	s.DepthCheck = nil
	s.Outcome = ""
	s.ReflectionText = ""
	s.ReviewSchedule = nil
}
