package questiongen

import "github.com/abhisek/passagequiz/internal/llm"

// requiredFields are the string fields every question carries.
var requiredFields = map[string]any{
	"type": map[string]any{
		"type":        "string",
		"description": "The type of question, copied verbatim from the requested list.",
	},
	"question": map[string]any{
		"type": "string",
		"description": "The question text. For fill-in-the-blank, use '___' for the blank. " +
			"For grammar/vocabulary questions, include the passage with numbered/underlined words.",
	},
	"answer": map[string]any{
		"type":        "string",
		"description": "The correct answer. For multiple choice, this should be the full text of the correct option.",
	},
	"explanation": map[string]any{
		"type":        "string",
		"description": "A brief explanation of why the answer is correct, in Korean.",
	},
}

var optionsField = map[string]any{
	"type":        "array",
	"description": "An array of 5 options for multiple-choice questions. Not required for other types.",
	"items": map[string]any{
		"type": "string",
	},
}

// itemDefinition describes one element of the question set as requested
// from the model.
var itemDefinition = map[string]any{
	"type":       "object",
	"properties": withField(requiredFields, "options", optionsField),
	"required":   []any{"type", "question", "answer", "explanation"},
}

// acceptedItem is what a returned element must satisfy. options is left
// out and decoded leniently by the normalizer.
var acceptedItem = map[string]any{
	"type":       "object",
	"properties": requiredFields,
	"required":   []any{"type", "question", "answer", "explanation"},
}

func withField(props map[string]any, name string, def any) map[string]any {
	out := make(map[string]any, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out[name] = def
	return out
}

// ItemSchema validates a single decoded question.
var ItemSchema = &llm.Schema{
	Name:        "passage-question",
	Description: "A single exam question generated from an English passage",
	Definition:  acceptedItem,
}

// SetSchema is the response schema sent with every generation request.
var SetSchema = &llm.Schema{
	Name:        "passage-question-set",
	Description: "The full set of exam questions generated from an English passage",
	Definition: map[string]any{
		"type":  "array",
		"items": itemDefinition,
	},
}
