// Package quiz implements the active-session screen: it renders the
// session state and translates key presses into state machine events.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizmith/quizmith/internal/advisor"
	"github.com/quizmith/quizmith/internal/qgen"
	quizpkg "github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/schedule"
	"github.com/quizmith/quizmith/internal/screen"
	"github.com/quizmith/quizmith/internal/screens/summary"
	"github.com/quizmith/quizmith/internal/session"
	"github.com/quizmith/quizmith/internal/store"
	"github.com/quizmith/quizmith/internal/ui/components"
	"github.com/quizmith/quizmith/internal/ui/layout"
)

// QuizScreen drives one session from topic submission to completion.
// The session state is the single source of truth; the screen only holds
// transient input widgets and the last validation message.
type QuizScreen struct {
	state  *session.State
	loader *qgen.Loader
	adv    advisor.Advisor
	repo   store.EventRepo

	highlight quizpkg.Letter
	chooser   components.Chooser
	input     components.TextInput

	// depth check runs as two yes/no prompts
	depthStep    int
	depthGlanced bool

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.SessionContextProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given topic. An empty topic runs the
// built-in question set.
func New(topic string, loader *qgen.Loader, adv advisor.Advisor, repo store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		state:  session.NewState(),
		loader: loader,
		adv:    adv,
		repo:   repo,
		input:  components.NewTextInput("What did you take away from this one?", 200),
	}
	_ = session.Apply(s.state, session.SubmitTopic{Topic: topic})
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadQuestions()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// SessionContext feeds the header: topic plus question progress.
func (s *QuizScreen) SessionContext() (string, int, int) {
	topic := s.state.Topic
	if topic == "" {
		topic = "Sample Quiz"
	}
	if len(s.state.Questions) == 0 {
		return topic, 0, 0
	}
	num := s.state.CurrentIndex + 1
	if num > len(s.state.Questions) {
		num = len(s.state.Questions)
	}
	return topic, num, len(s.state.Questions)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case session.PhaseUnderstanding:
		return []layout.KeyHint{
			{Key: "Y", Description: "I understand"},
			{Key: "N", Description: "Explain it"},
		}
	case session.PhaseComprehension, session.PhaseCorrection:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case session.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "A-D", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
		}
	case session.PhaseConfidence, session.PhaseDepthCheck, session.PhaseScheduler:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
		}
	case session.PhaseReflection:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit reflection"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		s.apply(session.QuestionsLoaded{SessionID: msg.SessionID, Questions: msg.Questions})
		return s, nil

	case advisoryMsg:
		s.apply(session.AdvisoryResolved{
			SessionID: msg.SessionID,
			Seq:       msg.Seq,
			Role:      string(msg.Role),
			Text:      msg.Text,
			At:        msg.At,
		})
		return s, nil

	case responsePersistedMsg:
		// Persistence is best-effort; the in-memory record is authoritative.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Reflection text input consumes everything else while active.
	if s.state.Phase == session.PhaseReflection {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.state.Phase {
	case session.PhaseUnderstanding:
		switch key {
		case "y", "Y":
			s.apply(session.MarkUnderstood{Understood: true})
			return s, nil
		case "n", "N":
			if s.apply(session.MarkUnderstood{Understood: false}) {
				return s, s.startAdvisory(advisor.RoleComprehension, s.comprehensionContext())
			}
			return s, nil
		}

	case session.PhaseComprehension:
		// Acknowledging dismisses the coaching text, so there must be
		// text to dismiss: wait out a pending call.
		if key == "enter" && !s.state.AdvisoryPending {
			s.apply(session.AcknowledgeComprehension{})
			return s, nil
		}

	case session.PhaseAnswering:
		return s.handleAnsweringKey(key)

	case session.PhaseConfidence:
		var cmd tea.Cmd
		s.chooser, cmd = s.chooser.Update(msg)
		if s.chooser.Picked {
			level := s.chooser.Selected + 1
			if s.apply(session.SubmitConfidence{Level: level}) {
				return s, s.startAdvisory(advisor.RoleConfidence, s.confidenceContext())
			}
			s.chooser.Reset()
		}
		return s, cmd

	case session.PhaseDepthCheck:
		return s.handleDepthCheckKey(msg)

	case session.PhaseCorrection:
		if key == "enter" {
			s.apply(session.AcknowledgeCorrection{})
			return s, nil
		}

	case session.PhaseReflection:
		if key == "enter" {
			if s.apply(session.SubmitReflection{Text: s.input.Value()}) {
				return s, s.startAdvisory(advisor.RoleReflection, s.reflectionContext())
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case session.PhaseScheduler:
		var cmd tea.Cmd
		s.chooser, cmd = s.chooser.Update(msg)
		if s.chooser.Picked {
			mode := s.chooser.Labels[s.chooser.Selected]
			schedCtx := s.schedulerContext(mode)
			if s.apply(session.SubmitSchedule{Mode: mode, Now: time.Now()}) {
				cmds := []tea.Cmd{
					s.startAdvisory(advisor.RoleScheduler, schedCtx),
					s.persistResponse(),
				}
				if s.state.Complete() {
					cmds = append(cmds, func() tea.Msg {
						return router.ReplaceScreenMsg{
							Screen: summary.New(s.state),
						}
					})
				}
				return s, tea.Batch(cmds...)
			}
			s.chooser.Reset()
		}
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleAnsweringKey(key string) (screen.Screen, tea.Cmd) {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return s, nil
	}

	switch key {
	case "up", "k":
		if i := s.highlight.Index(); i > 0 {
			s.highlight = quizpkg.LetterForIndex(i - 1)
		}
		return s, nil
	case "down", "j":
		if i := s.highlight.Index(); i < len(q.Options)-1 {
			s.highlight = quizpkg.LetterForIndex(i + 1)
		}
		return s, nil
	case "enter":
		s.apply(session.SubmitAnswer{})
		return s, nil
	case " ", "space":
		s.apply(session.SelectOption{Option: s.highlight})
		return s, nil
	}

	// Letter and number keys pick an option directly.
	if letter, ok := letterForKey(key); ok {
		if s.apply(session.SelectOption{Option: letter}) {
			s.highlight = letter
		}
	}
	return s, nil
}

func (s *QuizScreen) handleDepthCheckKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.chooser, cmd = s.chooser.Update(msg)
	if !s.chooser.Picked {
		return s, cmd
	}

	answeredYes := s.chooser.Selected == 0
	s.chooser.Reset()

	if s.depthStep == 0 {
		s.depthGlanced = answeredYes
		s.depthStep = 1
		return s, nil
	}

	s.depthStep = 0
	if s.apply(session.SubmitDepthCheck{Glanced: s.depthGlanced, Understood: answeredYes}) {
		// A failed depth check routes back to coaching; a passed one gets
		// the study-habits commentary alongside the evaluation result.
		if s.state.Phase == session.PhaseComprehension {
			return s, s.startAdvisory(advisor.RoleComprehension, s.comprehensionContext())
		}
		return s, s.startAdvisory(advisor.RoleDepthCheck, s.depthContext())
	}
	return s, nil
}

// apply runs one state machine transition and captures validation
// errors for display. Returns true when the event was accepted.
func (s *QuizScreen) apply(ev session.Event) bool {
	prev := s.state.Phase
	if err := session.Apply(s.state, ev); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			s.errMsg = verr.Message
		}
		return false
	}
	s.errMsg = ""
	if s.state.Phase != prev {
		s.syncPhaseUI()
	}
	return true
}

// syncPhaseUI resets the input widgets when the pipeline moves to a new
// phase.
func (s *QuizScreen) syncPhaseUI() {
	switch s.state.Phase {
	case session.PhaseAnswering:
		if s.state.SelectedOption != "" {
			s.highlight = s.state.SelectedOption
		} else {
			s.highlight = quizpkg.LetterA
		}
	case session.PhaseConfidence:
		s.chooser = components.NewChooser("Very Sure", "Kinda Sure", "Just Guessed")
	case session.PhaseDepthCheck:
		s.chooser = components.NewChooser("Yes", "No")
		s.depthStep = 0
	case session.PhaseScheduler:
		s.chooser = components.NewChooser(
			string(schedule.ModeEmail), string(schedule.ModeWhatsApp), string(schedule.ModeInApp))
	case session.PhaseReflection:
		s.input.Clear()
	}
}

// loadQuestions resolves the question batch off the update loop. The
// loader never fails: worst case it hands back the default set.
func (s *QuizScreen) loadQuestions() tea.Cmd {
	id := s.state.ID
	topic := s.state.Topic
	loader := s.loader
	return func() tea.Msg {
		return questionsLoadedMsg{
			SessionID: id,
			Questions: loader.Load(context.Background(), topic),
		}
	}
}

// startAdvisory marks a call in flight and fires it. The returned
// message carries the session ID and sequence captured now, so a
// resolution landing after a reset or a newer call never takes over the
// display. The call is persisted here, inside the command, so it reaches
// the audit store even when the session screen is gone by the time it
// resolves (the last question's scheduler advisory).
func (s *QuizScreen) startAdvisory(role advisor.Role, callContext string) tea.Cmd {
	s.apply(session.AdvisoryStarted{Role: string(role)})
	id := s.state.ID
	seq := s.state.AdvisorySeq
	adv := s.adv
	repo := s.repo
	return func() tea.Msg {
		text := adv.Advise(context.Background(), role, advisor.Instructions(role), callContext)
		at := time.Now()
		if repo != nil {
			_ = repo.AppendInteraction(context.Background(), store.InteractionData{
				SessionID: id,
				At:        at,
				Role:      string(role),
				Message:   text,
			})
		}
		return advisoryMsg{
			SessionID: id,
			Seq:       seq,
			Role:      role,
			Text:      text,
			At:        at,
		}
	}
}

// persistResponse writes the most recently frozen response record.
func (s *QuizScreen) persistResponse() tea.Cmd {
	if s.repo == nil || len(s.state.Responses) == 0 {
		return nil
	}
	r := s.state.Responses[len(s.state.Responses)-1]
	data := store.ResponseData{
		SessionID:     s.state.ID,
		At:            time.Now(),
		Topic:         s.state.Topic,
		QuestionIndex: r.QuestionIndex,
		Question:      r.Question,
		Selected:      string(r.Selected),
		Correct:       string(r.Correct),
		Outcome:       string(r.Outcome),
		Confidence:    string(r.Confidence),
		Reflection:    r.Reflection,
	}
	if r.Review != nil {
		d := r.Review.ReviewDate
		data.ReviewDate = &d
		data.DeliveryMode = string(r.Review.Mode)
	}
	repo := s.repo
	return func() tea.Msg {
		return responsePersistedMsg{Err: repo.AppendResponse(context.Background(), data)}
	}
}

// advisory call contexts

func (s *QuizScreen) comprehensionContext() string {
	q, _ := s.state.CurrentQuestion()
	return fmt.Sprintf("Topic: %s\nQuestion: %s", s.state.Topic, q.Text)
}

func (s *QuizScreen) confidenceContext() string {
	q, _ := s.state.CurrentQuestion()
	return fmt.Sprintf("Question: %s\nChosen option: %s\nStated confidence: %s",
		q.Text, s.state.SelectedOption, s.state.Confidence)
}

func (s *QuizScreen) depthContext() string {
	q, _ := s.state.CurrentQuestion()
	dc := s.state.DepthCheck
	glanced, understood := false, false
	if dc != nil {
		glanced, understood = dc.Glanced, dc.Understood
	}
	return fmt.Sprintf("Question: %s\nGlanced over all options: %t\nUnderstood the material: %t",
		q.Text, glanced, understood)
}

func (s *QuizScreen) reflectionContext() string {
	q, _ := s.state.CurrentQuestion()
	return fmt.Sprintf("Question: %s\nOutcome: %s\nReflection: %s",
		q.Text, s.state.Outcome, s.state.ReflectionText)
}

func (s *QuizScreen) schedulerContext(mode string) string {
	q, _ := s.state.CurrentQuestion()
	return fmt.Sprintf("Concept: %s\nOutcome: %s\nConfidence: %s\nDelivery mode: %s",
		q.Text, s.state.Outcome, s.state.Confidence, mode)
}

// letterForKey maps option keys to letters: a-d directly, 1-4 by position.
func letterForKey(key string) (quizpkg.Letter, bool) {
	switch key {
	case "a", "A", "1":
		return quizpkg.LetterA, true
	case "b", "B", "2":
		return quizpkg.LetterB, true
	case "c", "C", "3":
		return quizpkg.LetterC, true
	case "d", "D", "4":
		return quizpkg.LetterD, true
	}
	return "", false
}
