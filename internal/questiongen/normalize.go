package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/qtype"
)

// Normalize turns raw model output into questions. Invalid JSON is a
// *GenerationError. Valid JSON that is not an array yields an empty
// result. Elements that do not match ItemSchema are dropped. options is
// decoded leniently: null or absent becomes nil and non-string entries are
// skipped.
func Normalize(raw []byte) ([]GeneratedQuestion, error) {
	qs, _, err := normalize(raw)
	return qs, err
}

func normalize(raw []byte) ([]GeneratedQuestion, []Issue, error) {
	text := stripCodeFences(string(raw))

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, nil, &GenerationError{Kind: KindParse, Err: err}
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, []Issue{{Check: "shape", Index: -1, Message: fmt.Sprintf("top-level value is %s, not an array", jsonKind(parsed))}}, nil
	}

	var (
		out    = make([]GeneratedQuestion, 0, len(items))
		issues []Issue
	)
	for i, item := range items {
		if err := llm.ValidateValue(ItemSchema, item); err != nil {
			issues = append(issues, Issue{Check: "schema", Index: i, Message: "dropped: " + firstLine(err.Error())})
			continue
		}

		// The element passed the schema, so it is an object whose required
		// fields are strings.
		obj := item.(map[string]any)
		opts, msg := decodeOptions(obj["options"])
		if msg != "" {
			issues = append(issues, Issue{Check: "options", Index: i, Message: msg})
		}

		out = append(out, GeneratedQuestion{
			Type:        resolveType(obj["type"].(string)),
			Question:    obj["question"].(string),
			Options:     opts,
			Answer:      obj["answer"].(string),
			Explanation: obj["explanation"].(string),
		})
	}
	return out, issues, nil
}

// decodeOptions keeps the string entries of v. The message is non-empty
// when something had to be discarded.
func decodeOptions(v any) ([]string, string) {
	switch v := v.(type) {
	case nil:
		return nil, ""
	case []any:
		opts := make([]string, 0, len(v))
		skipped := 0
		for _, e := range v {
			if s, ok := e.(string); ok {
				opts = append(opts, s)
				continue
			}
			skipped++
		}
		if skipped > 0 {
			return opts, fmt.Sprintf("skipped %d non-string option(s)", skipped)
		}
		return opts, ""
	default:
		return nil, fmt.Sprintf("options is %s, not an array", jsonKind(v))
	}
}

// resolveType maps whatever label the model echoed back to a catalog ID,
// keeping unrecognized values verbatim.
func resolveType(raw string) qtype.Type {
	if t, err := qtype.Parse(raw); err == nil {
		return t
	}
	return qtype.Type(raw)
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
