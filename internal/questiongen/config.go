package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Checks run over every normalized question. They only report; a
	// failing check never removes a question.
	Checks []Check

	// MaxTokens is the token budget for the LLM response. Zero leaves the
	// provider default.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard checks and the fixed
// sampling temperature.
func DefaultConfig() Config {
	return Config{
		Checks: []Check{
			&KnownTypeCheck{},
			&OptionCountCheck{},
			&AnswerInOptionsCheck{},
			&MarkupCheck{},
		},
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
