package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/qtype"
)

func TestGenerate_MainIdeaAndWordScramble(t *testing.T) {
	content := json.RawMessage(`[
		{"type":"주제/제목 찾기","question":"다음 글의 제목으로 가장 적절한 것은?","options":["A title","B title","C title","D title","E title"],"answer":"A title","explanation":"글의 중심 내용이다."},
		{"type":"서술형 (단어 배열)","question":"[ day / was / sunny / it / a ]","answer":"It was a sunny day.","explanation":"주어 + 동사 + 보어 순서이다."}
	]`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), Request{
		Passage: testPassage,
		Types:   []qtype.Type{qtype.MainIdea, qtype.WordScramble},
	})
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, GeneratedQuestion{
		Type:        qtype.MainIdea,
		Question:    "다음 글의 제목으로 가장 적절한 것은?",
		Options:     []string{"A title", "B title", "C title", "D title", "E title"},
		Answer:      "A title",
		Explanation: "글의 중심 내용이다.",
	}, qs[0])
	assert.Equal(t, qtype.WordScramble, qs[1].Type)
	assert.Nil(t, qs[1].Options)
	assert.Equal(t, "It was a sunny day.", qs[1].Answer)

	require.Equal(t, 1, mock.CallCount())
	call, _ := mock.LastCall()
	assert.Equal(t, SetSchema, call.Schema)
	assert.Equal(t, 0.7, call.Temperature)
	assert.Contains(t, call.Messages[0].Content, testPassage)
}

func TestGenerate_InputErrorMakesNoCall(t *testing.T) {
	tests := []Request{
		{Passage: "   ", Types: []qtype.Type{qtype.MainIdea}},
		{Passage: testPassage},
	}
	for _, req := range tests {
		mock := llm.NewMockProvider()
		gen := New(mock, DefaultConfig(), nil)

		_, err := gen.Generate(context.Background(), req)
		var inErr *InputError
		require.True(t, errors.As(err, &inErr), "got %v", err)
		assert.Equal(t, 0, mock.CallCount())
	}
}

func TestGenerate_ProviderErrorIsWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{Passage: testPassage, Types: []qtype.Type{qtype.Grammar}})
	var rl *llm.ErrRateLimit
	require.True(t, errors.As(err, &rl), "got %v", err)
	assert.Equal(t, 1, mock.CallCount(), "exactly one attempt")
}

func TestGenerate_ParseFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{Passage: testPassage, Types: []qtype.Type{qtype.Grammar}})
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr), "got %v", err)
	assert.Equal(t, KindParse, genErr.Kind)
}

func TestGenerate_NonArrayIsEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"error":"nope"}`)})
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), Request{Passage: testPassage, Types: []qtype.Type{qtype.Grammar}})
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestGenerate_SetsPurpose(t *testing.T) {
	var seen string
	p := purposeProvider{fn: func(ctx context.Context) { seen = llm.PurposeFrom(ctx) }}
	gen := New(p, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{Passage: testPassage, Types: []qtype.Type{qtype.MainIdea}})
	require.NoError(t, err)
	assert.Equal(t, Purpose, seen)

	_, err = gen.Generate(llm.WithPurpose(context.Background(), "cli-generate"), Request{Passage: testPassage, Types: []qtype.Type{qtype.MainIdea}})
	require.NoError(t, err)
	assert.Equal(t, "cli-generate", seen)
}

type purposeProvider struct {
	fn func(ctx context.Context)
}

func (p purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Content: json.RawMessage(`[]`)}, nil
}

func (p purposeProvider) ModelID() string { return "purpose" }
