package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/passagequiz/internal/qtype"
)

// Issue is a non-fatal observation about a generated question.
type Issue struct {
	Check   string // name of the check that raised it
	Index   int    // position in the result, -1 for the whole response
	Message string
}

func (i Issue) String() string {
	if i.Index < 0 {
		return fmt.Sprintf("%s: %s", i.Check, i.Message)
	}
	return fmt.Sprintf("%s[%d]: %s", i.Check, i.Index, i.Message)
}

// Check inspects a question and reports a problem, or nil.
// Implementations should be stateless and safe for concurrent use.
type Check interface {
	Name() string
	Check(q GeneratedQuestion) *Issue
}

// Diagnose runs every check over qs and collects the issues with their
// positions filled in.
func Diagnose(qs []GeneratedQuestion, checks []Check) []Issue {
	var issues []Issue
	for i, q := range qs {
		for _, c := range checks {
			if iss := c.Check(q); iss != nil {
				iss.Index = i
				if iss.Check == "" {
					iss.Check = c.Name()
				}
				issues = append(issues, *iss)
			}
		}
	}
	return issues
}

// KnownTypeCheck flags types that are not in the catalog.
type KnownTypeCheck struct{}

func (c *KnownTypeCheck) Name() string { return "known-type" }

func (c *KnownTypeCheck) Check(q GeneratedQuestion) *Issue {
	if q.Type.Valid() {
		return nil
	}
	return &Issue{Message: fmt.Sprintf("unrecognized type %q kept as-is", string(q.Type))}
}

// OptionCountCheck verifies the option count against the type's rule.
type OptionCountCheck struct{}

func (c *OptionCountCheck) Name() string { return "option-count" }

func (c *OptionCountCheck) Check(q GeneratedQuestion) *Issue {
	if !q.Type.Valid() {
		return nil
	}
	want := q.Type.Rule().OptionCount
	if len(q.Options) == want {
		return nil
	}
	return &Issue{Message: fmt.Sprintf("%d options, want %d", len(q.Options), want)}
}

// AnswerInOptionsCheck flags multiple-choice answers that match no option.
type AnswerInOptionsCheck struct{}

func (c *AnswerInOptionsCheck) Name() string { return "answer-in-options" }

func (c *AnswerInOptionsCheck) Check(q GeneratedQuestion) *Issue {
	if len(q.Options) == 0 {
		return nil
	}
	answer := normalizeOption(q.Answer)
	for _, opt := range q.Options {
		if normalizeOption(opt) == answer {
			return nil
		}
	}
	return &Issue{Message: fmt.Sprintf("answer %q matches no option", q.Answer)}
}

// normalizeOption strips circled-number prefixes and whitespace so
// "② adapt" and "adapt" compare equal.
func normalizeOption(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "①②③④⑤ ")
	return strings.ToLower(strings.TrimSpace(s))
}

// MarkupCheck looks for the structural marker the type's rule requires.
type MarkupCheck struct{}

func (c *MarkupCheck) Name() string { return "markup" }

func (c *MarkupCheck) Check(q GeneratedQuestion) *Issue {
	var ok bool
	switch q.Type.Rule().Markup {
	case qtype.MarkupBlank:
		ok = strings.Contains(q.Question, "___")
	case qtype.MarkupNumberedUnderline:
		ok = strings.ContainsRune(q.Question, '①') && strings.ContainsRune(q.Question, '⑤')
	case qtype.MarkupInsertionPoints:
		ok = strings.Contains(q.Question, "[①]") || strings.Contains(q.Question, "(①)")
	case qtype.MarkupParagraphBlocks:
		ok = strings.Contains(q.Question, "(A)") && strings.Contains(q.Question, "(B)") && strings.Contains(q.Question, "(C)")
	case qtype.MarkupSummaryBlanks:
		ok = strings.Contains(q.Question, "(A)")
	default:
		return nil
	}
	if ok {
		return nil
	}
	return &Issue{Message: fmt.Sprintf("missing %s markup", q.Type.Rule().Markup)}
}
