package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func questionSetDefinition() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":     map[string]any{"type": "string", "description": "question type label"},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"answer":      map[string]any{"type": "string"},
				"explanation": map[string]any{"type": "string"},
			},
			"required": []any{"type", "question", "answer", "explanation"},
		},
	}
}

func TestGeminiSchema_ArrayOfObjects(t *testing.T) {
	schema := geminiSchema(questionSetDefinition())

	require.Equal(t, genai.TypeArray, schema.Type)
	require.NotNil(t, schema.MinItems)
	assert.Equal(t, int64(1), *schema.MinItems)
	assert.Nil(t, schema.MaxItems)

	item := schema.Items
	require.NotNil(t, item)
	assert.Equal(t, genai.TypeObject, item.Type)
	assert.Len(t, item.Properties, 5)
	assert.Equal(t, "question type label", item.Properties["type"].Description)
	assert.Equal(t, genai.TypeArray, item.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, item.Properties["options"].Items.Type)
	assert.Equal(t, []string{"type", "question", "answer", "explanation"}, item.Required)
	assert.Equal(t, []string{"type", "question", "answer", "explanation", "options"}, item.PropertyOrdering)
}

func TestGeminiSchema_Enum(t *testing.T) {
	schema := geminiSchema(map[string]any{"type": "string", "enum": []any{"A", "B", "C"}})
	assert.Equal(t, genai.TypeString, schema.Type)
	assert.Equal(t, []string{"A", "B", "C"}, schema.Enum)
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(Request{
		System:      "be terse",
		Temperature: 0.7,
		Schema:      &Schema{Name: "set", Definition: questionSetDefinition()},
	})
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.7, *cfg.Temperature, 1e-6)
	assert.Zero(t, cfg.MaxOutputTokens)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	require.NotNil(t, cfg.ResponseSchema)
	assert.Equal(t, genai.TypeArray, cfg.ResponseSchema.Type)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "be terse", cfg.SystemInstruction.Parts[0].Text)
}

func geminiResult(text string, reason genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      genai.NewContentFromText(text, genai.RoleModel),
			FinishReason: reason,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 20,
			TotalTokenCount:      30,
		},
	}
}

func TestGeminiResponse(t *testing.T) {
	resp, err := geminiResponse(geminiResult(`[]`, genai.FinishReasonStop), "gemini-2.5-flash")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(resp.Content))
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}, resp.Usage)

	resp, err = geminiResponse(geminiResult(`[{"type"`, genai.FinishReasonMaxTokens), "m")
	require.NoError(t, err)
	assert.Equal(t, "max_tokens", resp.StopReason)
}

func TestGeminiResponse_BlockedOrEmpty(t *testing.T) {
	var invalid *ErrInvalidResponse

	_, err := geminiResponse(geminiResult("", genai.FinishReasonStop), "m")
	require.True(t, errors.As(err, &invalid), "got %v", err)

	_, err = geminiResponse(geminiResult("partial", genai.FinishReasonSafety), "m")
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Contains(t, err.Error(), "SAFETY")

	_, err = geminiResponse(&genai.GenerateContentResponse{}, "m")
	require.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	assert.True(t, errors.As(mapGeminiError(genai.APIError{Code: 429}), &rl))

	var un *ErrProviderUnavailable
	assert.True(t, errors.As(mapGeminiError(genai.APIError{Code: 503}), &un))
	assert.True(t, errors.As(mapGeminiError(errors.New("dial tcp: refused")), &un))
}
