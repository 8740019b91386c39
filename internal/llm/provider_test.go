package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/passagequiz/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`[{"type":"main-idea"}]`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`[]`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `[{"type":"main-idea"}]` {
		t.Fatalf("unexpected content %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `[]` {
		t.Fatalf("expected [], got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"queued"`)})
	mock.SetFallback(MockResponse{Content: json.RawMessage(`"fallback"`)})

	for _, want := range []string{`"queued"`, `"fallback"`, `"fallback"`} {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Content) != want {
			t.Fatalf("content = %s, want %s", resp.Content, want)
		}
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`[]`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" {
		t.Fatalf("expected system 'sys', got %q", last.System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if !Transient(err) {
		t.Fatal("rate limit should be transient")
	}
	if Transient(&ErrInvalidResponse{Err: errors.New("x")}) {
		t.Fatal("invalid response should not be transient")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PASSAGEQUIZ_LLM_PROVIDER", "PASSAGEQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY",
		"PASSAGEQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY", "PASSAGEQUIZ_ANTHROPIC_API_KEY",
		"ANTHROPIC_API_KEY", "PASSAGEQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
		"PASSAGEQUIZ_LLM_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_GeminiKeyFallbacks(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("API_KEY", "from-api-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "from-api-key" {
		t.Fatalf("gemini key = %q", cfg.Gemini.APIKey)
	}

	t.Setenv("PASSAGEQUIZ_GEMINI_API_KEY", "preferred")
	if got := ConfigFromEnv().Gemini.APIKey; got != "preferred" {
		t.Fatalf("gemini key = %q, want preferred", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing credential is an error", func(t *testing.T) {
		clearLLMEnv(t)
		if _, err := LoadConfig(); err == nil {
			t.Fatal("expected error without any key")
		}
	})

	t.Run("discovers another provider", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-found")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-found" {
			t.Fatalf("cfg = %+v", cfg)
		}
	})

	t.Run("explicit provider is not overridden", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("PASSAGEQUIZ_LLM_PROVIDER", "anthropic")
		t.Setenv("OPENAI_API_KEY", "sk-found")
		if _, err := LoadConfig(); err == nil {
			t.Fatal("expected error for anthropic without key")
		}
	})

	t.Run("no timeout by default", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("PASSAGEQUIZ_LLM_PROVIDER", "mock")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Timeout != 0 {
			t.Fatalf("timeout = %s, want disabled", cfg.Timeout)
		}
	})

	t.Run("timeout override", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("PASSAGEQUIZ_LLM_PROVIDER", "mock")
		t.Setenv("PASSAGEQUIZ_LLM_TIMEOUT", "5s")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Timeout != 5*time.Second {
			t.Fatalf("timeout = %s", cfg.Timeout)
		}
	})
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`[]`), Usage: Usage{InputTokens: 12, OutputTokens: 34}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "mock", s.EventRepo(), nil)
	ctx := WithPurpose(context.Background(), "question-gen")

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected second call to fail")
	}

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	failed, ok := events[0], events[1]
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("failed event = %+v", failed)
	}
	if !ok.Success || ok.InputTokens != 12 || ok.OutputTokens != 34 || ok.Purpose != "question-gen" || ok.Provider != "mock" {
		t.Errorf("ok event = %+v", ok)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)}), "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, &ErrProviderUnavailable{Err: ctx.Err()}
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	if WithTimeout(slowProvider{}, 0) != (slowProvider{}) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}

func TestNewProvider_MockChain(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock", Timeout: time.Second}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}
	if UnwrapMock(p) == nil {
		t.Fatal("expected to find the mock under the decorators")
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "nope"}, nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestObjectRoot(t *testing.T) {
	arr := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	root, wrapped := objectRoot(arr)
	if !wrapped {
		t.Fatal("array schema should be wrapped")
	}
	props := root["properties"].(map[string]any)
	if props[wrapKey] == nil {
		t.Fatalf("wrapped schema missing %q: %v", wrapKey, root)
	}

	obj := map[string]any{"type": "object"}
	if _, wrapped := objectRoot(obj); wrapped {
		t.Fatal("object schema should not be wrapped")
	}
}

func TestUnwrapRoot(t *testing.T) {
	if got := string(unwrapRoot(json.RawMessage(`{"items":[1,2]}`))); got != `[1,2]` {
		t.Fatalf("unwrap = %s", got)
	}
	if got := string(unwrapRoot(json.RawMessage(`not json`))); got != `not json` {
		t.Fatalf("non-JSON content should pass through, got %s", got)
	}
	if got := string(unwrapRoot(json.RawMessage(`{"other":1}`))); got != `{"other":1}` {
		t.Fatalf("unexpected shape should pass through, got %s", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-2.8) > 1e-9 {
		t.Fatalf("cost = %v, want 2.8", got)
	}
	if LookupCost("google/gemini-2.5-flash") == nil {
		t.Fatal("expected vendor-prefixed lookup to resolve")
	}
	if LookupCost("made-up-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
