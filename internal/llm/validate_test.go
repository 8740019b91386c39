package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testItemSchema() *Schema {
	return &Schema{
		Name:        "test-question-item",
		Description: "A single question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":     map[string]any{"type": "string"},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"answer": map[string]any{"type": "string"},
			},
			"required": []any{"type", "question", "answer"},
		},
	}
}

func TestValidateJSON_Valid(t *testing.T) {
	raw := json.RawMessage(`{"type":"main-idea","question":"Q?","options":["a","b"],"answer":"a"}`)
	if err := ValidateJSON(testItemSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"type":"word-scramble","question":"Arrange","answer":"It works."}`)
	if err := ValidateJSON(testItemSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"type":"grammar","question":"Q?"}`},
		{"wrong type", `{"type":"grammar","question":"Q?","answer":3}`},
		{"non-string option", `{"type":"grammar","question":"Q?","options":[1,2],"answer":"1"}`},
		{"malformed", `{not json}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(testItemSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateValue_DecodedInput(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`{"type":"vocabulary","question":"Q?","answer":"b"}`), &v); err != nil {
		t.Fatal(err)
	}
	if err := ValidateValue(testItemSchema(), v); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := ValidateValue(testItemSchema(), "just a string"); err == nil {
		t.Fatal("expected error for non-object value")
	}
}
