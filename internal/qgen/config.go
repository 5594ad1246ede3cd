package qgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// BatchSize is the number of questions to request per topic.
	BatchSize int

	// MaxTokens is the token budget for the LLM response. A full batch
	// of five questions with explanations needs room.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		BatchSize:   5,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
