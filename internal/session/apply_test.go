package session

import (
	"errors"
	"testing"
	"time"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/schedule"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// mustApply applies an event and fails the test on any error.
func mustApply(t *testing.T, s *State, ev Event) {
	t.Helper()
	if err := Apply(s, ev); err != nil {
		t.Fatalf("Apply(%T) in phase %s: %v", ev, s.Phase, err)
	}
}

// startedState returns a session that has loaded the default questions
// and sits at Understanding on question 0.
func startedState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	mustApply(t, s, SubmitTopic{Topic: ""})
	mustApply(t, s, QuestionsLoaded{SessionID: s.ID, Questions: quiz.DefaultQuestions()})
	return s
}

// answerCurrentQuestion walks one question through the happy path:
// understood, pick the given letter, high confidence, thorough depth
// check, acknowledge correction if wrong, reflect, schedule.
func answerCurrentQuestion(t *testing.T, s *State, pick quiz.Letter) {
	t.Helper()
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: pick})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})
	if s.Phase == PhaseCorrection {
		mustApply(t, s, AcknowledgeCorrection{})
	}
	mustApply(t, s, SubmitReflection{Text: "that makes sense now"})
	mustApply(t, s, SubmitSchedule{Mode: "Email", Now: testNow})
}

func TestFullTraversalEndsComplete(t *testing.T) {
	s := startedState(t)
	n := len(s.Questions)

	for i := 0; i < n; i++ {
		q, ok := s.CurrentQuestion()
		if !ok {
			t.Fatalf("no current question at index %d", i)
		}
		answerCurrentQuestion(t, s, q.Answer)
	}

	if s.Phase != PhaseComplete {
		t.Errorf("phase = %s, want complete", s.Phase)
	}
	if s.CurrentIndex != n {
		t.Errorf("currentIndex = %d, want %d", s.CurrentIndex, n)
	}
	if len(s.Responses) != n {
		t.Errorf("responses = %d, want %d", len(s.Responses), n)
	}
	for i, r := range s.Responses {
		if r.Outcome != quiz.OutcomeCorrect {
			t.Errorf("response %d outcome = %s, want Correct", i, r.Outcome)
		}
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("CurrentQuestion should be absent after completion")
	}
}

func TestUnderstoodFalseGoesToComprehension(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: false})
	if s.Phase != PhaseComprehension {
		t.Fatalf("phase = %s, want comprehension", s.Phase)
	}
	mustApply(t, s, AcknowledgeComprehension{})
	if s.Phase != PhaseAnswering {
		t.Errorf("phase = %s, want answering", s.Phase)
	}
}

func TestSubmitAnswerWithoutSelectionRejected(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: true})

	err := Apply(s, SubmitAnswer{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Phase != PhaseAnswering {
		t.Errorf("rejected submit must not advance phase, got %s", s.Phase)
	}
}

func TestSelectOptionIdempotent(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: quiz.LetterA})
	mustApply(t, s, SelectOption{Option: quiz.LetterC})
	mustApply(t, s, SelectOption{Option: quiz.LetterC})

	if s.SelectedOption != quiz.LetterC {
		t.Errorf("selectedOption = %s, want latest pick C", s.SelectedOption)
	}
	if len(s.Responses) != 0 {
		t.Errorf("re-selection must not create responses, got %d", len(s.Responses))
	}
	if s.Phase != PhaseAnswering {
		t.Errorf("phase = %s, want answering", s.Phase)
	}
}

func TestSelectOptionRejectsInvalidLetter(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: true})

	var verr *ValidationError
	if err := Apply(s, SelectOption{Option: "E"}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for letter E, got %v", err)
	}
	if s.SelectedOption != "" {
		t.Errorf("rejected selection must not mutate state, got %q", s.SelectedOption)
	}
}

func TestConfidenceLevelValidation(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: quiz.LetterA})
	mustApply(t, s, SubmitAnswer{})

	var verr *ValidationError
	for _, level := range []int{0, 4, -1} {
		if err := Apply(s, SubmitConfidence{Level: level}); !errors.As(err, &verr) {
			t.Errorf("level %d should be rejected, got %v", level, err)
		}
	}
	if s.Phase != PhaseConfidence {
		t.Fatalf("phase = %s, want confidence", s.Phase)
	}

	mustApply(t, s, SubmitConfidence{Level: 2})
	if s.Confidence != schedule.ConfidenceMedium {
		t.Errorf("confidence = %s, want Medium", s.Confidence)
	}
	if s.Phase != PhaseDepthCheck {
		t.Errorf("phase = %s, want depth-check", s.Phase)
	}
}

func TestDepthCheckFailureReturnsToComprehension(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: quiz.LetterA})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: false})

	if s.Phase != PhaseComprehension {
		t.Fatalf("phase = %s, want comprehension (not submission)", s.Phase)
	}
	if s.Outcome != "" {
		t.Errorf("no evaluation should happen on a failed depth check, got %s", s.Outcome)
	}
	// Answer survives the detour.
	if s.SelectedOption != quiz.LetterA {
		t.Errorf("selection lost on comprehension detour: %q", s.SelectedOption)
	}
}

func TestDepthCheckPassEvaluatesImmediately(t *testing.T) {
	s := startedState(t)
	q, _ := s.CurrentQuestion()

	// Wrong answer lands on correction.
	wrong := quiz.LetterB
	if q.Answer == wrong {
		wrong = quiz.LetterC
	}
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: wrong})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})

	if s.Outcome != quiz.OutcomeIncorrect {
		t.Errorf("outcome = %s, want Incorrect", s.Outcome)
	}
	if s.Phase != PhaseCorrection {
		t.Errorf("phase = %s, want correction", s.Phase)
	}
}

func TestCorrectAnswerSkipsCorrection(t *testing.T) {
	s := startedState(t)
	q, _ := s.CurrentQuestion()

	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: q.Answer})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})

	if s.Phase != PhaseReflection {
		t.Errorf("phase = %s, want reflection", s.Phase)
	}
}

func TestEmptyReflectionRejected(t *testing.T) {
	s := startedState(t)
	q, _ := s.CurrentQuestion()
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: q.Answer})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})

	var verr *ValidationError
	if err := Apply(s, SubmitReflection{Text: "   "}); !errors.As(err, &verr) {
		t.Fatalf("whitespace reflection should be rejected, got %v", err)
	}
	if s.Phase != PhaseReflection {
		t.Errorf("phase = %s, want reflection", s.Phase)
	}
}

func TestInvalidDeliveryModeRejected(t *testing.T) {
	s := startedState(t)
	q, _ := s.CurrentQuestion()
	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: q.Answer})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 1})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})
	mustApply(t, s, SubmitReflection{Text: "noted"})

	var verr *ValidationError
	if err := Apply(s, SubmitSchedule{Mode: "pigeon", Now: testNow}); !errors.As(err, &verr) {
		t.Fatalf("unknown delivery mode should be rejected, got %v", err)
	}
	if s.Phase != PhaseScheduler {
		t.Errorf("phase = %s, want scheduler", s.Phase)
	}
	if len(s.Responses) != 0 {
		t.Errorf("rejected schedule must not advance, responses = %d", len(s.Responses))
	}
}

func TestResponseFreezingRoundTrip(t *testing.T) {
	s := startedState(t)
	q, _ := s.CurrentQuestion()
	wrong := quiz.LetterD
	if q.Answer == wrong {
		wrong = quiz.LetterA
	}

	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SelectOption{Option: wrong})
	mustApply(t, s, SubmitAnswer{})
	mustApply(t, s, SubmitConfidence{Level: 3})
	mustApply(t, s, SubmitDepthCheck{Glanced: true, Understood: true})
	mustApply(t, s, AcknowledgeCorrection{})
	mustApply(t, s, SubmitReflection{Text: "misread the options"})

	// Snapshot the working fields right before the advance.
	wantSelected := s.SelectedOption
	wantOutcome := s.Outcome
	wantConfidence := s.Confidence
	wantReflection := s.ReflectionText

	mustApply(t, s, SubmitSchedule{Mode: "whatsapp", Now: testNow})

	if len(s.Responses) != 1 {
		t.Fatalf("responses = %d, want 1", len(s.Responses))
	}
	r := s.Responses[0]
	if r.QuestionIndex != 0 || r.Question != q.Text {
		t.Errorf("frozen question mismatch: index %d, text %q", r.QuestionIndex, r.Question)
	}
	if r.Selected != wantSelected || r.Correct != q.Answer {
		t.Errorf("frozen letters = (%s, %s), want (%s, %s)", r.Selected, r.Correct, wantSelected, q.Answer)
	}
	if r.Outcome != wantOutcome || r.Confidence != wantConfidence || r.Reflection != wantReflection {
		t.Errorf("frozen fields diverge from pre-advance working fields: %+v", r)
	}
	if r.Review == nil {
		t.Fatal("frozen response missing review schedule")
	}
	if r.Review.Mode != schedule.ModeWhatsApp || r.Review.Concept != q.Text {
		t.Errorf("frozen review = %+v", r.Review)
	}
	// Incorrect + low confidence: next day either way.
	if want := testNow.AddDate(0, 0, 1); !r.Review.ReviewDate.Equal(want) {
		t.Errorf("reviewDate = %v, want %v", r.Review.ReviewDate, want)
	}

	// Working fields are reset exactly at advance.
	if s.SelectedOption != "" || s.Confidence != "" || s.Outcome != "" ||
		s.ReflectionText != "" || s.ReviewSchedule != nil || s.DepthCheck != nil || s.Understood != nil {
		t.Error("working fields were not cleared on advance")
	}
	if s.CurrentIndex != 1 || s.Phase != PhaseUnderstanding {
		t.Errorf("advance landed on (index %d, phase %s)", s.CurrentIndex, s.Phase)
	}
}

func TestLastQuestionAdvancesToComplete(t *testing.T) {
	s := startedState(t)
	n := len(s.Questions)

	for i := 0; i < n-1; i++ {
		q, _ := s.CurrentQuestion()
		answerCurrentQuestion(t, s, q.Answer)
	}
	if s.CurrentIndex != n-1 {
		t.Fatalf("setup: currentIndex = %d, want %d", s.CurrentIndex, n-1)
	}

	q, _ := s.CurrentQuestion()
	answerCurrentQuestion(t, s, q.Answer)

	if s.Phase != PhaseComplete {
		t.Errorf("phase = %s, want complete (not understanding)", s.Phase)
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("currentQuestion should be absent after the last advance")
	}
}

func TestAdvisoryResolutionMatchesSequence(t *testing.T) {
	s := startedState(t)

	mustApply(t, s, AdvisoryStarted{Role: "Comprehension Coach"})
	seq := s.AdvisorySeq
	if !s.AdvisoryPending {
		t.Fatal("advisoryPending should be set after AdvisoryStarted")
	}

	mustApply(t, s, AdvisoryResolved{
		SessionID: s.ID,
		Seq:       seq,
		Role:      "Comprehension Coach",
		Text:      "Take it one option at a time.",
		At:        testNow,
	})

	if s.AdvisoryPending {
		t.Error("advisoryPending should clear on resolution")
	}
	if s.AdvisoryText != "Take it one option at a time." {
		t.Errorf("advisoryText = %q", s.AdvisoryText)
	}
	if len(s.InteractionLog) != 1 {
		t.Fatalf("interactionLog entries = %d, want 1", len(s.InteractionLog))
	}
	if s.InteractionLog[0].Role != "Comprehension Coach" || !s.InteractionLog[0].At.Equal(testNow) {
		t.Errorf("interactionLog entry = %+v", s.InteractionLog[0])
	}
}

func TestSupersededAdvisoryLoggedButNotDisplayed(t *testing.T) {
	s := startedState(t)
	mustApply(t, s, AdvisoryStarted{Role: "Comprehension Coach"})
	supersededSeq := s.AdvisorySeq

	// A newer call supersedes the first before it resolves.
	mustApply(t, s, AdvisoryStarted{Role: "Confidence Coach"})

	mustApply(t, s, AdvisoryResolved{
		SessionID: s.ID, Seq: supersededSeq, Role: "Comprehension Coach",
		Text: "late text", At: testNow,
	})
	if s.AdvisoryText == "late text" {
		t.Error("superseded advisory call must not be displayed")
	}
	if !s.AdvisoryPending {
		t.Error("pending flag belongs to the newer call and must stay set")
	}
	// The call did complete, so the audit trail keeps it.
	if len(s.InteractionLog) != 1 {
		t.Fatalf("interactionLog entries = %d, want 1", len(s.InteractionLog))
	}
	if s.InteractionLog[0].Role != "Comprehension Coach" || s.InteractionLog[0].Message != "late text" {
		t.Errorf("interactionLog entry = %+v", s.InteractionLog[0])
	}
}

func TestEveryCompletedAdvisoryIsLogged(t *testing.T) {
	s := startedState(t)

	mustApply(t, s, AdvisoryStarted{Role: "Confidence Coach"})
	firstSeq := s.AdvisorySeq
	mustApply(t, s, AdvisoryStarted{Role: "Depth Check Coach"})
	secondSeq := s.AdvisorySeq

	mustApply(t, s, AdvisoryResolved{
		SessionID: s.ID, Seq: firstSeq, Role: "Confidence Coach",
		Text: "you sounded sure", At: testNow,
	})
	mustApply(t, s, AdvisoryResolved{
		SessionID: s.ID, Seq: secondSeq, Role: "Depth Check Coach",
		Text: "thorough work", At: testNow,
	})

	if len(s.InteractionLog) != 2 {
		t.Fatalf("interactionLog entries = %d, want 2", len(s.InteractionLog))
	}
	if s.InteractionLog[0].Role != "Confidence Coach" {
		t.Errorf("first entry = %+v, want Confidence Coach", s.InteractionLog[0])
	}
	if s.InteractionLog[1].Role != "Depth Check Coach" {
		t.Errorf("second entry = %+v, want Depth Check Coach", s.InteractionLog[1])
	}
	if s.AdvisoryText != "thorough work" {
		t.Errorf("advisoryText = %q, want the newest call's text", s.AdvisoryText)
	}
}

func TestResolutionFromAbandonedSessionIgnored(t *testing.T) {
	old := startedState(t)
	mustApply(t, old, AdvisoryStarted{Role: "Comprehension Coach"})
	oldSeq := old.AdvisorySeq

	// Reset: a fresh session replaces the old one.
	fresh := NewState()
	mustApply(t, fresh, SubmitTopic{Topic: "astronomy"})

	mustApply(t, fresh, AdvisoryResolved{
		SessionID: old.ID, Seq: oldSeq, Role: "Comprehension Coach",
		Text: "ghost of a dead session", At: testNow,
	})
	if fresh.AdvisoryText != "" || len(fresh.InteractionLog) != 0 {
		t.Error("a late call from an abandoned session must not mutate the new session")
	}
}

func TestQuestionsLoadedForWrongSessionIgnored(t *testing.T) {
	s := NewState()
	mustApply(t, s, SubmitTopic{Topic: "biology"})

	mustApply(t, s, QuestionsLoaded{SessionID: "someone-else", Questions: quiz.DefaultQuestions()})
	if s.Phase != PhaseLoadingQuestions || len(s.Questions) != 0 {
		t.Error("a batch for another session must be ignored")
	}
}

func TestOutOfPhaseEventsAreNoOps(t *testing.T) {
	s := startedState(t)
	before := *s

	// None of these belong in Understanding.
	for _, ev := range []Event{
		SubmitTopic{Topic: "x"},
		SubmitAnswer{},
		SubmitConfidence{Level: 1},
		SubmitDepthCheck{Glanced: true, Understood: true},
		AcknowledgeCorrection{},
		SubmitReflection{Text: "hello"},
		SubmitSchedule{Mode: "Email", Now: testNow},
	} {
		if err := Apply(s, ev); err != nil {
			t.Errorf("out-of-phase %T should be a silent no-op, got %v", ev, err)
		}
	}

	if s.Phase != before.Phase || s.CurrentIndex != before.CurrentIndex || len(s.Responses) != 0 {
		t.Error("out-of-phase events mutated state")
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	s := startedState(t)
	for i := 0; i < len(s.Questions); i++ {
		q, _ := s.CurrentQuestion()
		answerCurrentQuestion(t, s, q.Answer)
	}
	if s.Phase != PhaseComplete {
		t.Fatalf("setup: phase = %s", s.Phase)
	}

	mustApply(t, s, MarkUnderstood{Understood: true})
	mustApply(t, s, SubmitTopic{Topic: "again"})
	if s.Phase != PhaseComplete {
		t.Errorf("complete must have no outgoing transitions, got %s", s.Phase)
	}
}
