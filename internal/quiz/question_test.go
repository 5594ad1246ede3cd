package quiz

import "testing"

func TestLetterForIndex(t *testing.T) {
	cases := []struct {
		index int
		want  Letter
	}{
		{0, LetterA},
		{1, LetterB},
		{2, LetterC},
		{3, LetterD},
	}
	for _, c := range cases {
		if got := LetterForIndex(c.index); got != c.want {
			t.Errorf("LetterForIndex(%d) = %q, want %q", c.index, got, c.want)
		}
	}
}

func TestLetterIndexRoundTrip(t *testing.T) {
	for i := 0; i < OptionCount; i++ {
		l := LetterForIndex(i)
		if l.Index() != i {
			t.Errorf("letter %q round-trips to index %d, want %d", l, l.Index(), i)
		}
	}
}

func TestLetterValid(t *testing.T) {
	for _, l := range Letters {
		if !l.Valid() {
			t.Errorf("letter %q should be valid", l)
		}
	}
	for _, l := range []Letter{"E", "a", "", "AB", "1"} {
		if l.Valid() {
			t.Errorf("letter %q should be invalid", l)
		}
		if l.Index() != -1 {
			t.Errorf("invalid letter %q should have index -1, got %d", l, l.Index())
		}
	}
}

func TestEvaluate(t *testing.T) {
	if got := Evaluate(LetterA, LetterA); got != OutcomeCorrect {
		t.Errorf("Evaluate(A, A) = %q, want Correct", got)
	}
	if got := Evaluate(LetterB, LetterA); got != OutcomeIncorrect {
		t.Errorf("Evaluate(B, A) = %q, want Incorrect", got)
	}
}

func TestFilterValid(t *testing.T) {
	good := Question{
		Text:    "Which planet is closest to the sun?",
		Options: []string{"Venus", "Mercury", "Mars", "Earth"},
		Answer:  LetterB,
	}
	batch := []Question{
		good,
		{Text: "Too few options", Options: []string{"A", "B"}, Answer: LetterA},
		{Text: "Bad answer letter", Options: []string{"1", "2", "3", "4"}, Answer: "E"},
		{Text: "", Options: []string{"1", "2", "3", "4"}, Answer: LetterA},
	}

	filtered := FilterValid(batch)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 valid question, got %d", len(filtered))
	}
	if filtered[0].Text != good.Text {
		t.Errorf("wrong question survived filtering: %q", filtered[0].Text)
	}
}

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions()
	if len(qs) != 5 {
		t.Fatalf("expected 5 default questions, got %d", len(qs))
	}
	if qs[0].Options[0] != "Photosynthesis" {
		t.Errorf("first default question should be the Photosynthesis question, got %q", qs[0].Text)
	}
	for i, q := range qs {
		if !q.Valid() {
			t.Errorf("default question %d is malformed", i)
		}
	}

	// Mutating the returned slice must not touch the package data.
	qs[0].Answer = LetterD
	if DefaultQuestions()[0].Answer != LetterA {
		t.Error("DefaultQuestions should return an independent copy")
	}
}

func TestQuestionOption(t *testing.T) {
	q := DefaultQuestions()[0]
	if got := q.Option(LetterA); got != "Photosynthesis" {
		t.Errorf("Option(A) = %q", got)
	}
	if got := q.Option("E"); got != "" {
		t.Errorf("Option(E) should be empty, got %q", got)
	}
}
