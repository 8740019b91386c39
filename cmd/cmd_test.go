package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/questiongen"
	"github.com/abhisek/passagequiz/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env-file", ""))
	err := rootCmd.Execute()
	return out.String(), err
}

func mockEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PASSAGEQUIZ_LLM_PROVIDER", "mock")
	t.Setenv("PASSAGEQUIZ_DB", filepath.Join(dir, "test.db"))
	t.Setenv("PASSAGEQUIZ_LOG_FILE", filepath.Join(dir, "test.log"))
	return dir
}

func TestGenerate_DemoThenListEvents(t *testing.T) {
	mockEnv(t)

	out, err := execute(t, "generate", "--demo", "--all")
	require.NoError(t, err)

	var qs []questiongen.GeneratedQuestion
	require.NoError(t, json.Unmarshal([]byte(out), &qs), out)
	require.Len(t, qs, len(qtype.All()))
	for _, q := range qs {
		if q.Type == qtype.WordScramble {
			assert.Nil(t, q.Options)
		} else {
			assert.Len(t, q.Options, 5, q.Type)
		}
	}

	out, err = execute(t, "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cli-generate")
	assert.Contains(t, out, "mock")
}

func TestGenerate_MissingProviderKeyFailsEarly(t *testing.T) {
	t.Setenv("PASSAGEQUIZ_LLM_PROVIDER", "openai")
	t.Setenv("PASSAGEQUIZ_OPENAI_API_KEY", "")

	_, err := execute(t, "version")
	require.NoError(t, err, "version does not need a provider")

	_, err = execute(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PASSAGEQUIZ_OPENAI_API_KEY")
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	for _, typ := range qtype.All() {
		assert.Contains(t, out, string(typ))
		assert.Contains(t, out, typ.Label())
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "passagequiz (devel)\n", out)
}

func passageFlags() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().Bool("demo", false, "")
	c.Flags().String("file", "", "")
	c.Flags().StringSlice("type", nil, "")
	c.Flags().Bool("all", false, "")
	return c
}

func TestReadPassage(t *testing.T) {
	c := passageFlags()
	_, err := readPassage(c)
	require.Error(t, err)

	require.NoError(t, c.Flags().Set("file", "-"))
	c.SetIn(strings.NewReader("From stdin."))
	got, err := readPassage(c)
	require.NoError(t, err)
	assert.Equal(t, "From stdin.", got)

	require.NoError(t, c.Flags().Set("demo", "true"))
	got, err = readPassage(c)
	require.NoError(t, err)
	assert.Equal(t, questiongen.DemoPassage, got)
}

func TestSelectedTypes(t *testing.T) {
	c := passageFlags()
	require.NoError(t, c.Flags().Set("type", "grammar,빈칸 추론,grammar"))
	got, err := selectedTypes(c)
	require.NoError(t, err)
	assert.Equal(t, []qtype.Type{qtype.Grammar, qtype.FillInBlank}, got)

	c = passageFlags()
	require.NoError(t, c.Flags().Set("type", "poetry"))
	_, err = selectedTypes(c)
	assert.ErrorIs(t, err, qtype.ErrUnknownType)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	writeText(&buf, nil)
	assert.Equal(t, "No questions generated.\n", buf.String())

	buf.Reset()
	writeText(&buf, []questiongen.GeneratedQuestion{{
		Type:     qtype.Vocabulary,
		Question: "밑줄 친 단어의 의미는?",
		Options:  []string{"a", "b", "c", "d", "e"},
		Answer:   "c",
	}})
	out := buf.String()
	assert.Contains(t, out, "1. [어휘 추론]")
	assert.Contains(t, out, "⑤ e")
	assert.Contains(t, out, "정답: c")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, nil, nil)
	assert.Contains(t, buf.String(), "No LLM usage recorded yet.")

	buf.Reset()
	printStats(&buf,
		[]store.PurposeUsage{{Purpose: "question-gen", Calls: 2, InputTokens: 1000, OutputTokens: 500}},
		[]store.ModelUsage{
			{Model: "gpt-4o-mini", Calls: 1, InputTokens: 1000, OutputTokens: 500},
			{Model: "mystery", Calls: 1},
		})
	out := buf.String()
	assert.Contains(t, out, "question-gen")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: mystery")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "영어", truncate("영어문제", 2))
	assert.Equal(t, "abc", truncate("abc", 5))
}
