package questiongen

import (
	"fmt"

	"github.com/abhisek/passagequiz/internal/qtype"
)

// GeneratedQuestion is one exam item produced from a passage.
type GeneratedQuestion struct {
	// Type is the category the model reported. Values outside the catalog
	// are kept verbatim so nothing the model returned is hidden.
	Type qtype.Type `json:"type"`

	// Question is the prompt text, including any passage excerpt and
	// structural markers the type requires.
	Question string `json:"question"`

	// Options holds the choices for multiple-choice items. Nil when the
	// model returned no options field.
	Options []string `json:"options,omitempty"`

	// Answer is the option text for multiple choice, or the complete
	// sentence for word scramble.
	Answer string `json:"answer"`

	// Explanation is a short Korean rationale.
	Explanation string `json:"explanation"`
}

// Request is the input to a generation call.
type Request struct {
	Passage string
	Types   []qtype.Type
}

// Field names used by InputError.
const (
	FieldPassage = "passage"
	FieldTypes   = "types"
)

// InputError reports a request rejected before any network call.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Kind classifies a GenerationError.
type Kind string

const (
	// KindParse means the model output was not valid JSON.
	KindParse Kind = "parse"
)

// parseFailureMessage is shown when the model output cannot be decoded.
const parseFailureMessage = "AI로부터 받은 응답을 처리하는 데 실패했습니다. 모델이 유효하지 않은 형식을 반환했을 수 있습니다."

// GenerationError reports a response that arrived but could not be used.
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return parseFailureMessage
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Detail returns the underlying cause for logs.
func (e *GenerationError) Detail() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}
