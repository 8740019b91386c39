// Package qtype defines the closed catalog of exam question categories.
package qtype

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies a pedagogical question category. Values are stable
// kebab-case IDs; use Label for display.
type Type string

const (
	MainIdea          Type = "main-idea"
	Comprehension     Type = "comprehension"
	FillInBlank       Type = "fill-in-blank"
	Grammar           Type = "grammar"
	Vocabulary        Type = "vocabulary"
	SentenceInsertion Type = "sentence-insertion"
	ParagraphOrder    Type = "paragraph-order"
	SummaryCompletion Type = "summary-completion"
	WordScramble      Type = "word-scramble"
)

// ErrUnknownType is returned by Parse for values outside the catalog.
var ErrUnknownType = errors.New("unknown question type")

type entry struct {
	typ     Type
	label   string
	english string
}

// catalog is the fixed presentation order.
var catalog = []entry{
	{MainIdea, "주제/제목 찾기", "Main Idea/Title"},
	{Comprehension, "내용 일치/불일치", "Comprehension - True/False"},
	{FillInBlank, "빈칸 추론", "Fill-in-the-Blank"},
	{Grammar, "어법성 판단", "Grammar Correction"},
	{Vocabulary, "어휘 추론", "Vocabulary in Context"},
	{SentenceInsertion, "문장 삽입", "Sentence Insertion"},
	{ParagraphOrder, "순서 배열", "Paragraph Ordering"},
	{SummaryCompletion, "요약문 완성", "Summary Completion"},
	{WordScramble, "서술형 (단어 배열)", "Word Scramble"},
}

var byType = func() map[Type]entry {
	m := make(map[Type]entry, len(catalog))
	for _, e := range catalog {
		m[e.typ] = e
	}
	return m
}()

// All returns every supported type in catalog order.
func All() []Type {
	out := make([]Type, len(catalog))
	for i, e := range catalog {
		out[i] = e.typ
	}
	return out
}

// Valid reports whether t is a member of the catalog.
func (t Type) Valid() bool {
	_, ok := byType[t]
	return ok
}

// Label returns the Korean display label. Types outside the catalog
// return their raw value so model-invented labels still render.
func (t Type) Label() string {
	if e, ok := byType[t]; ok {
		return e.label
	}
	return string(t)
}

// EnglishName returns the English name used alongside the label in prompts.
func (t Type) EnglishName() string {
	if e, ok := byType[t]; ok {
		return e.english
	}
	return string(t)
}

func (t Type) String() string { return string(t) }

// Parse resolves an ID, Korean label or English name to a Type.
// Matching ignores surrounding whitespace and ASCII case.
func Parse(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrUnknownType)
	}
	for _, e := range catalog {
		if strings.EqualFold(s, string(e.typ)) ||
			s == e.label ||
			strings.EqualFold(s, e.english) ||
			strings.EqualFold(s, fmt.Sprintf("%s (%s)", e.label, e.english)) {
			return e.typ, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// ParseAll parses every value and collapses duplicates, keeping the
// first occurrence order.
func ParseAll(values []string) ([]Type, error) {
	out := make([]Type, 0, len(values))
	for _, v := range values {
		t, err := Parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return Dedup(out), nil
}

// Dedup removes repeated types, keeping the first occurrence order.
func Dedup(types []Type) []Type {
	seen := make(map[Type]bool, len(types))
	out := make([]Type, 0, len(types))
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
