package quiz

// OptionCount is the number of options every question carries.
// Options are positionally mapped to letters: option i is letter 'A'+i.
const OptionCount = 4

// Letter identifies one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the valid option letters in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// LetterForIndex returns the letter for a 0-based option index.
// Index 0 is A, index 3 is D.
func LetterForIndex(i int) Letter {
	return Letter(rune('A' + i))
}

// Index returns the 0-based option index for the letter, or -1 if the
// letter is not one of A-D.
func (l Letter) Index() int {
	if !l.Valid() {
		return -1
	}
	return int(l[0] - 'A')
}

// Valid reports whether the letter is one of A-D.
func (l Letter) Valid() bool {
	return len(l) == 1 && l[0] >= 'A' && l[0] <= 'D'
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly four option texts, in A-D order.
	Options []string

	// Answer is the letter of the correct option.
	Answer Letter

	// Explanation is an optional explanation of the correct answer,
	// shown during corrective feedback.
	Explanation string
}

// Option returns the option text for the given letter, or "" when the
// letter is invalid or out of range.
func (q Question) Option(l Letter) string {
	i := l.Index()
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// Valid reports whether the question is well-formed: non-empty text,
// exactly four options, and an answer letter in A-D.
func (q Question) Valid() bool {
	return q.Text != "" && len(q.Options) == OptionCount && q.Answer.Valid()
}

// FilterValid drops malformed records from a generated batch. Records
// with a wrong option count or an answer letter outside A-D never enter
// session state.
func FilterValid(batch []Question) []Question {
	out := make([]Question, 0, len(batch))
	for _, q := range batch {
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}
