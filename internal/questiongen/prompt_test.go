package questiongen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/passagequiz/internal/qtype"
)

const testPassage = "The quick brown fox jumps over the lazy dog. It was a sunny day."

func TestCompile_IncludesPassageAndRequestedRules(t *testing.T) {
	p, err := Compile(Request{
		Passage: testPassage,
		Types:   []qtype.Type{qtype.FillInBlank, qtype.WordScramble},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.User, testPassage) {
		t.Error("prompt should contain the passage verbatim")
	}
	if !strings.HasSuffix(p.User, "---\n"+testPassage+"\n---") {
		t.Error("passage should be the last section, between delimiters")
	}
	if !strings.Contains(p.User, "빈칸 추론, 서술형 (단어 배열)") {
		t.Errorf("prompt should list requested labels in order:\n%s", p.User)
	}
	if !strings.Contains(p.User, "Provide explanations in Korean") {
		t.Error("prompt should require Korean explanations")
	}

	for _, typ := range qtype.All() {
		block := ruleBlock(typ)
		n := strings.Count(p.User, block)
		switch typ {
		case qtype.FillInBlank, qtype.WordScramble:
			if n != 1 {
				t.Errorf("rule block for %s appears %d times, want 1", typ, n)
			}
		default:
			if n != 0 {
				t.Errorf("rule block for unrequested %s appears %d times", typ, n)
			}
		}
	}

	if p.Schema != SetSchema {
		t.Error("prompt should carry the question set schema")
	}
	if !strings.Contains(p.System, "CSAT") {
		t.Error("system prompt should set the exam persona")
	}
}

func TestCompile_Deterministic(t *testing.T) {
	req := Request{Passage: testPassage, Types: []qtype.Type{qtype.Grammar, qtype.MainIdea}}
	a, err := Compile(req)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Compile(req)
	if a.User != b.User || a.System != b.System {
		t.Fatal("compiling the same request twice should give the same prompt")
	}
}

func TestCompile_CollapsesDuplicateTypes(t *testing.T) {
	p, err := Compile(Request{
		Passage: testPassage,
		Types:   []qtype.Type{qtype.Grammar, qtype.Grammar, qtype.MainIdea},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(p.User, ruleBlock(qtype.Grammar)); n != 1 {
		t.Errorf("duplicate type produced %d rule blocks", n)
	}
}

func TestCompile_InputErrors(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"empty passage", Request{Passage: "", Types: []qtype.Type{qtype.MainIdea}}, FieldPassage},
		{"whitespace passage", Request{Passage: " \n\t ", Types: []qtype.Type{qtype.MainIdea}}, FieldPassage},
		{"no types", Request{Passage: testPassage}, FieldTypes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.req)
			var inErr *InputError
			if !errors.As(err, &inErr) {
				t.Fatalf("expected *InputError, got %T (%v)", err, err)
			}
			if inErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", inErr.Field, tt.wantField)
			}
		})
	}
}

func TestCompile_UnknownType(t *testing.T) {
	_, err := Compile(Request{Passage: testPassage, Types: []qtype.Type{"essay"}})
	if !errors.Is(err, qtype.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestPromptRequest_UsesConfig(t *testing.T) {
	p, err := Compile(Request{Passage: testPassage, Types: []qtype.Type{qtype.MainIdea}})
	if err != nil {
		t.Fatal(err)
	}
	req := p.Request(DefaultConfig())
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != p.User {
		t.Errorf("expected single user message carrying the prompt")
	}
}
