package quiz

// defaultQuestions is the built-in general-knowledge set used whenever
// question generation is unavailable or returns nothing usable.
var defaultQuestions = []Question{
	{
		Text:        "What is the main process that plants use to convert light energy into chemical energy?",
		Options:     []string{"Photosynthesis", "Respiration", "Fermentation", "Decomposition"},
		Answer:      LetterA,
		Explanation: "Photosynthesis is the process where plants use sunlight, water, and carbon dioxide to create oxygen and energy in the form of glucose.",
	},
	{
		Text:        "Which of the following is NOT a primary color of light?",
		Options:     []string{"Red", "Green", "Yellow", "Blue"},
		Answer:      LetterC,
		Explanation: "Yellow is not a primary color of light. The primary colors of light are Red, Green, and Blue (RGB).",
	},
	{
		Text:        "What is the chemical symbol for gold?",
		Options:     []string{"Go", "Gd", "Au", "Ag"},
		Answer:      LetterC,
		Explanation: "Au (from the Latin 'aurum') is the chemical symbol for gold. Ag is silver, Gd is gadolinium, and Go isn't a valid chemical symbol.",
	},
	{
		Text:        "Which planet is known as the 'Red Planet'?",
		Options:     []string{"Venus", "Mars", "Jupiter", "Mercury"},
		Answer:      LetterB,
		Explanation: "Mars is known as the 'Red Planet' due to its reddish appearance, which comes from iron oxide (rust) on its surface.",
	},
	{
		Text:        "What data structure operates on the principle of 'First In, First Out'?",
		Options:     []string{"Stack", "Queue", "Tree", "Graph"},
		Answer:      LetterB,
		Explanation: "A Queue operates on the First In, First Out (FIFO) principle. Items are removed in the same order they were added. In contrast, a Stack operates on Last In, First Out (LIFO).",
	},
}

// DefaultQuestions returns a fresh copy of the built-in question set.
// Callers get their own slice so session state never aliases the package
// level data.
func DefaultQuestions() []Question {
	out := make([]Question, len(defaultQuestions))
	copy(out, defaultQuestions)
	return out
}
