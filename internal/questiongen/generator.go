package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/logger"
)

// Purpose labels the LLM events recorded for question generation.
const Purpose = "question-gen"

// Generator produces a question set from a passage.
type Generator interface {
	// Generate validates req, makes exactly one provider call and returns
	// the normalized questions. Input errors are returned before any I/O.
	Generate(ctx context.Context, req Request) ([]GeneratedQuestion, error)
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// New creates a new LLMGenerator. log may be nil.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *LLMGenerator {
	if log == nil {
		log = logger.Nop()
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// Generate compiles the prompt, calls the provider once and normalizes the
// output. Diagnostics are logged and never reject a question.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]GeneratedQuestion, error) {
	prompt, err := Compile(req)
	if err != nil {
		return nil, err
	}

	if llm.PurposeFrom(ctx) == "unknown" {
		ctx = llm.WithPurpose(ctx, Purpose)
	}

	resp, err := g.provider.Generate(ctx, prompt.Request(g.config))
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	qs, issues, err := normalize(resp.Content)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			g.log.Error("could not parse model output", "detail", genErr.Detail(), "bytes", len(resp.Content))
		}
		return nil, err
	}

	issues = append(issues, Diagnose(qs, g.config.Checks)...)
	for _, iss := range issues {
		g.log.Warn("question diagnostic", "check", iss.Check, "index", iss.Index, "message", iss.Message)
	}
	g.log.Info("question set generated",
		"requested_types", len(req.Types),
		"questions", len(qs),
		"issues", len(issues),
	)

	return qs, nil
}
