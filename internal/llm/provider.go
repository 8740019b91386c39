package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the raw model output.
	// When the request carries a Schema, the provider asks the model for
	// JSON matching it through its native structured output mechanism.
	// The output is not validated here; callers own parsing.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Question generation is single
	// turn, so this usually holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response should conform to.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	// Zero leaves the provider default in place.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "question-set".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the text the model produced, unmodified.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// wrapKey is the property used when a non-object schema has to be hosted
// inside an object for providers that only accept object roots.
const wrapKey = "items"

// objectRoot returns def unchanged when it already describes an object.
// Otherwise it returns an object schema holding def under wrapKey and
// reports wrapped=true so the response can be unwrapped afterwards.
func objectRoot(def map[string]any) (root map[string]any, wrapped bool) {
	if t, _ := def["type"].(string); t == "object" {
		return def, false
	}
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{wrapKey: def},
		"required":             []any{wrapKey},
		"additionalProperties": false,
	}, true
}

// unwrapRoot extracts the wrapKey member from content. Content that does
// not have the expected shape is returned as-is so the caller's parser can
// report on what the model actually produced.
func unwrapRoot(content json.RawMessage) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(content, &obj); err != nil {
		return content
	}
	if inner, ok := obj[wrapKey]; ok {
		return inner
	}
	return content
}
