package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/qtype"
)

const systemPrompt = `You are an expert creator of English exam questions for Korean high school students. The questions should be similar in style to those found in the Korean CSAT (수능) or high school internal exams (내신).

Rules:
- Use only the passage as the factual basis for every question.
- Generate questions only for the requested types, using each type label exactly as written in the "type" field.
- Provide explanations in Korean.
- Every multiple-choice question has exactly 5 options, and the answer is the full text of the correct option.
- Return the output strictly in the specified JSON format.`

// Prompt is the compiled instruction document for one generation call.
type Prompt struct {
	System string
	User   string
	Schema *llm.Schema
}

// Request converts the prompt into a provider request.
func (p Prompt) Request(cfg Config) llm.Request {
	return llm.Request{
		System: p.System,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: p.User},
		},
		Schema:      p.Schema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}

// Validate checks a request without compiling it. It is the gate the
// generator runs before any network call.
func Validate(req Request) error {
	if strings.TrimSpace(req.Passage) == "" {
		return &InputError{Field: FieldPassage, Message: "Please enter some text to generate questions."}
	}
	if len(req.Types) == 0 {
		return &InputError{Field: FieldTypes, Message: "Please select at least one question type."}
	}
	for _, t := range req.Types {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", qtype.ErrUnknownType, string(t))
		}
	}
	return nil
}

// Compile builds the prompt for req. It is pure: the same request always
// yields the same prompt.
func Compile(req Request) (Prompt, error) {
	if err := Validate(req); err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: systemPrompt,
		User:   buildUserMessage(req.Passage, qtype.Dedup(req.Types)),
		Schema: SetSchema,
	}, nil
}

// buildUserMessage lists the requested labels, one rule block per
// requested type and finally the passage between delimiters.
func buildUserMessage(passage string, types []qtype.Type) string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.Label()
	}

	var b strings.Builder

	b.WriteString("Based on the following passage, generate a set of questions.\n")
	fmt.Fprintf(&b, "The question types required are: %s.\n", strings.Join(labels, ", "))
	b.WriteString("\nProvide explanations in Korean.\n")

	b.WriteString("\nPlease adhere to the following rules for each question type:\n")
	for _, t := range types {
		b.WriteString(ruleBlock(t))
		b.WriteString("\n")
	}

	b.WriteString("\nReturn the output strictly in the specified JSON format. ")
	b.WriteString("Ensure all multiple-choice questions have 5 options.\n")

	b.WriteString("\nPassage:\n---\n")
	b.WriteString(passage)
	b.WriteString("\n---")

	return b.String()
}

// ruleBlock renders the rule line for one type, e.g.
// "- 빈칸 추론 (Fill-in-the-Blank): ...".
func ruleBlock(t qtype.Type) string {
	return fmt.Sprintf("- %s (%s): %s", t.Label(), t.EnglishName(), t.Rule().Text)
}
