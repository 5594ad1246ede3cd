package quiz

// Outcome is the correctness result of an answered question.
type Outcome string

const (
	OutcomeCorrect   Outcome = "Correct"
	OutcomeIncorrect Outcome = "Incorrect"
)

// Evaluate compares the selected option against the correct one.
// Equality is an exact letter match.
func Evaluate(selected, correct Letter) Outcome {
	if selected == correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}
