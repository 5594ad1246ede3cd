package session

import (
	"strings"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/schedule"
)

// Apply runs one transition of the session state machine. It mutates s
// in place and returns a *ValidationError when learner input is rejected
// (phase unchanged, no other mutation). Events that make no sense in the
// current phase are ignored: Apply is total and never panics.
func Apply(s *State, ev Event) error {
	switch ev := ev.(type) {
	case SubmitTopic:
		return applySubmitTopic(s, ev)
	case QuestionsLoaded:
		return applyQuestionsLoaded(s, ev)
	case MarkUnderstood:
		return applyMarkUnderstood(s, ev)
	case AcknowledgeComprehension:
		return applyAcknowledgeComprehension(s)
	case SelectOption:
		return applySelectOption(s, ev)
	case SubmitAnswer:
		return applySubmitAnswer(s)
	case SubmitConfidence:
		return applySubmitConfidence(s, ev)
	case SubmitDepthCheck:
		return applySubmitDepthCheck(s, ev)
	case AcknowledgeCorrection:
		return applyAcknowledgeCorrection(s)
	case SubmitReflection:
		return applySubmitReflection(s, ev)
	case SubmitSchedule:
		return applySubmitSchedule(s, ev)
	case AdvisoryStarted:
		return applyAdvisoryStarted(s, ev)
	case AdvisoryResolved:
		return applyAdvisoryResolved(s, ev)
	}
	return nil
}

func applySubmitTopic(s *State, ev SubmitTopic) error {
	if s.Phase != PhaseInit {
		return nil
	}
	s.Topic = strings.TrimSpace(ev.Topic)
	s.Phase = PhaseLoadingQuestions
	return nil
}

func applyQuestionsLoaded(s *State, ev QuestionsLoaded) error {
	if s.Phase != PhaseLoadingQuestions || ev.SessionID != s.ID {
		return nil
	}
	if len(ev.Questions) == 0 {
		// The loader never delivers an empty batch; keep waiting if it
		// somehow does rather than entering an unanswerable session.
		return nil
	}
	s.Questions = ev.Questions
	s.CurrentIndex = 0
	s.Phase = PhaseUnderstanding
	return nil
}

func applyMarkUnderstood(s *State, ev MarkUnderstood) error {
	if s.Phase != PhaseUnderstanding {
		return nil
	}
	u := ev.Understood
	s.Understood = &u
	if u {
		s.Phase = PhaseAnswering
	} else {
		s.Phase = PhaseComprehension
	}
	return nil
}

func applyAcknowledgeComprehension(s *State) error {
	if s.Phase != PhaseComprehension {
		return nil
	}
	s.Phase = PhaseAnswering
	return nil
}

func applySelectOption(s *State, ev SelectOption) error {
	if s.Phase != PhaseAnswering {
		return nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	if !ev.Option.Valid() || ev.Option.Index() >= len(q.Options) {
		return invalid("option", "pick one of the listed options")
	}
	// Re-selecting just replaces the previous pick.
	s.SelectedOption = ev.Option
	return nil
}

func applySubmitAnswer(s *State) error {
	if s.Phase != PhaseAnswering {
		return nil
	}
	if s.SelectedOption == "" {
		return invalid("option", "select an option before submitting")
	}
	s.Phase = PhaseConfidence
	return nil
}

func applySubmitConfidence(s *State, ev SubmitConfidence) error {
	if s.Phase != PhaseConfidence {
		return nil
	}
	conf, ok := schedule.ConfidenceFromLevel(ev.Level)
	if !ok {
		return invalid("confidence", "confidence must be 1 (very sure), 2 (kinda sure), or 3 (just guessed)")
	}
	s.Confidence = conf
	s.Phase = PhaseDepthCheck
	return nil
}

func applySubmitDepthCheck(s *State, ev SubmitDepthCheck) error {
	if s.Phase != PhaseDepthCheck {
		return nil
	}
	dc := DepthCheck{Glanced: ev.Glanced, Understood: ev.Understood}
	s.DepthCheck = &dc

	if !dc.Thorough() {
		// Not ready to be judged: back to coaching, answer preserved.
		s.Phase = PhaseComprehension
		return nil
	}

	// Submission is instantaneous: evaluate and land on the result.
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	s.Outcome = quiz.Evaluate(s.SelectedOption, q.Answer)
	if s.Outcome == quiz.OutcomeIncorrect {
		s.Phase = PhaseCorrection
	} else {
		s.Phase = PhaseReflection
	}
	return nil
}

func applyAcknowledgeCorrection(s *State) error {
	if s.Phase != PhaseCorrection {
		return nil
	}
	s.Phase = PhaseReflection
	return nil
}

func applySubmitReflection(s *State, ev SubmitReflection) error {
	if s.Phase != PhaseReflection {
		return nil
	}
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return invalid("reflection", "write a short reflection before continuing")
	}
	s.ReflectionText = text
	s.Phase = PhaseScheduler
	return nil
}

func applySubmitSchedule(s *State, ev SubmitSchedule) error {
	if s.Phase != PhaseScheduler {
		return nil
	}
	mode, err := schedule.ParseDeliveryMode(ev.Mode)
	if err != nil {
		return invalid("deliveryMode", err.Error())
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	s.ReviewSchedule = &schedule.Review{
		Concept:    q.Text,
		ReviewDate: schedule.ComputeReviewDate(s.Outcome, s.Confidence, ev.Now),
		Mode:       mode,
	}
	advance(s)
	return nil
}

func applyAdvisoryStarted(s *State, ev AdvisoryStarted) error {
	s.AdvisoryPending = true
	s.AdvisorySeq++
	return nil
}

func applyAdvisoryResolved(s *State, ev AdvisoryResolved) error {
	// A resolution from an abandoned session touches nothing.
	if ev.SessionID != s.ID {
		return nil
	}

	// The call completed, so it belongs in the audit trail even when a
	// newer call has superseded it for display.
	s.InteractionLog = append(s.InteractionLog, InteractionEntry{
		At:      ev.At,
		Role:    ev.Role,
		Message: ev.Text,
	})

	// Display and the pending flag belong to the newest call only.
	// Phase names repeat per question, so staleness is judged by the
	// call sequence, never by phase.
	if ev.Seq != s.AdvisorySeq {
		return nil
	}
	s.AdvisoryPending = false
	s.AdvisoryText = ev.Text
	return nil
}

// advance freezes the working fields into a response record, clears
// them, and moves to the next question or to completion. CurrentIndex
// only ever increases, by exactly one, here.
func advance(s *State) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}

	s.Responses = append(s.Responses, Response{
		QuestionIndex: s.CurrentIndex,
		Question:      q.Text,
		Selected:      s.SelectedOption,
		Correct:       q.Answer,
		Outcome:       s.Outcome,
		Confidence:    s.Confidence,
		Reflection:    s.ReflectionText,
		Review:        s.ReviewSchedule,
	})

	s.clearWorkingFields()
	s.CurrentIndex++

	if s.CurrentIndex < len(s.Questions) {
		s.Phase = PhaseUnderstanding
	} else {
		s.Phase = PhaseComplete
	}
}
