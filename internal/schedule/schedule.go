// Package schedule computes when a concept should resurface for review.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/quizmith/quizmith/internal/quiz"
)

// Review intervals in days. A shaky result (wrong answer or low
// confidence) comes back tomorrow; a solid one waits a week.
const (
	ShortIntervalDays = 1
	LongIntervalDays  = 7
)

// Confidence is the learner's self-reported certainty in their answer.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ConfidenceFromLevel maps the 1-3 input scale to a Confidence.
// 1 = High ("very sure"), 2 = Medium, 3 = Low ("just guessed").
func ConfidenceFromLevel(level int) (Confidence, bool) {
	switch level {
	case 1:
		return ConfidenceHigh, true
	case 2:
		return ConfidenceMedium, true
	case 3:
		return ConfidenceLow, true
	}
	return "", false
}

// DeliveryMode is the channel a review reminder is recorded against.
type DeliveryMode string

const (
	ModeEmail    DeliveryMode = "Email"
	ModeWhatsApp DeliveryMode = "WhatsApp"
	ModeInApp    DeliveryMode = "In-App"
)

// ParseDeliveryMode resolves learner input to a DeliveryMode.
// Matching is case-insensitive and tolerates surrounding whitespace;
// anything outside the closed set is rejected.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return ModeEmail, nil
	case "whatsapp":
		return ModeWhatsApp, nil
	case "in-app", "inapp", "in app":
		return ModeInApp, nil
	}
	return "", fmt.Errorf("unknown delivery mode %q (want Email, WhatsApp, or In-App)", s)
}

// Review is the computed review schedule for one completed question.
type Review struct {
	// Concept is the question text the review targets.
	Concept string

	// ReviewDate is the calendar day the concept resurfaces.
	ReviewDate time.Time

	// Mode is how the reminder would be delivered.
	Mode DeliveryMode
}

// ComputeReviewDate returns the date the concept should come back.
// Incorrect outcomes and low confidence both mean the concept is shaky,
// so it returns today+1; everything else returns today+7.
func ComputeReviewDate(outcome quiz.Outcome, confidence Confidence, today time.Time) time.Time {
	days := LongIntervalDays
	if outcome == quiz.OutcomeIncorrect || confidence == ConfidenceLow {
		days = ShortIntervalDays
	}
	return today.AddDate(0, 0, days)
}
