package session

import (
	"time"

	"github.com/quizmith/quizmith/internal/quiz"
)

// Event is a discrete external stimulus applied to session state:
// learner input or the resolution of an outstanding collaborator call.
type Event interface {
	isEvent()
}

// SubmitTopic starts the session. An empty topic selects the built-in
// question set.
type SubmitTopic struct {
	Topic string
}

// QuestionsLoaded delivers the resolved question batch. The loader
// guarantees a non-empty, pre-filtered batch (falling back to defaults),
// so no validity check happens here. SessionID guards against a batch
// resolved for an abandoned session.
type QuestionsLoaded struct {
	SessionID string
	Questions []quiz.Question
}

// MarkUnderstood records the learner's answer to "do you understand the
// question?".
type MarkUnderstood struct {
	Understood bool
}

// AcknowledgeComprehension dismisses the comprehension coaching text.
type AcknowledgeComprehension struct{}

// SelectOption picks (or re-picks) an answer option. The phase stays at
// Answering until SubmitAnswer.
type SelectOption struct {
	Option quiz.Letter
}

// SubmitAnswer locks in the currently selected option.
type SubmitAnswer struct{}

// SubmitConfidence records the 1-3 confidence rating.
type SubmitConfidence struct {
	Level int
}

// SubmitDepthCheck records the pre-evaluation self-report. Evaluation
// happens inside this transition when both checks pass.
type SubmitDepthCheck struct {
	Glanced    bool
	Understood bool
}

// AcknowledgeCorrection dismisses the corrective feedback.
type AcknowledgeCorrection struct{}

// SubmitReflection records the learner's free-text reflection.
type SubmitReflection struct {
	Text string
}

// SubmitSchedule records the review delivery mode and advances to the
// next question (or completes the session). Now supplies the wall clock
// for the review-date computation, keeping the transition deterministic.
type SubmitSchedule struct {
	Mode string
	Now  time.Time
}

// AdvisoryStarted marks an advisory call as in flight and bumps the call
// sequence. The caller reads State.AdvisorySeq afterwards to tag the
// matching resolution.
type AdvisoryStarted struct {
	Role string
}

// AdvisoryResolved delivers advisory text (or its placeholder). It is
// applied only when both the session ID and the call sequence match the
// current state; anything else is a stale call from an abandoned session
// or a superseded request.
type AdvisoryResolved struct {
	SessionID string
	Seq       int
	Role      string
	Text      string
	At        time.Time
}

func (SubmitTopic) isEvent()              {}
func (QuestionsLoaded) isEvent()          {}
func (MarkUnderstood) isEvent()           {}
func (AcknowledgeComprehension) isEvent() {}
func (SelectOption) isEvent()             {}
func (SubmitAnswer) isEvent()             {}
func (SubmitConfidence) isEvent()         {}
func (SubmitDepthCheck) isEvent()         {}
func (AcknowledgeCorrection) isEvent()    {}
func (SubmitReflection) isEvent()         {}
func (SubmitSchedule) isEvent()           {}
func (AdvisoryStarted) isEvent()          {}
func (AdvisoryResolved) isEvent()         {}
