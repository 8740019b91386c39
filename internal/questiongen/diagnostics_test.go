package questiongen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passagequiz/internal/qtype"
)

func TestDiagnose_SampleSetIsClean(t *testing.T) {
	issues := Diagnose(SampleQuestions(), DefaultConfig().Checks)
	assert.Empty(t, issues)
}

func TestDiagnose_ReportsWithoutRemoving(t *testing.T) {
	qs := []GeneratedQuestion{
		{Type: qtype.MainIdea, Question: "Q", Options: []string{"a", "b", "c"}, Answer: "z"},
		{Type: "Cloze Test", Question: "Q", Answer: "A"},
		{Type: qtype.FillInBlank, Question: "no blank here", Options: []string{"a", "b", "c", "d", "e"}, Answer: "a"},
	}
	issues := Diagnose(qs, DefaultConfig().Checks)
	assert.Len(t, qs, 3)

	byCheck := map[string][]int{}
	for _, iss := range issues {
		byCheck[iss.Check] = append(byCheck[iss.Check], iss.Index)
	}
	assert.Equal(t, []int{0}, byCheck["option-count"])
	assert.Equal(t, []int{0}, byCheck["answer-in-options"])
	assert.Equal(t, []int{1}, byCheck["known-type"])
	assert.Equal(t, []int{2}, byCheck["markup"])
}

func TestAnswerInOptionsCheck_IgnoresCircledPrefix(t *testing.T) {
	q := GeneratedQuestion{
		Type:    qtype.Grammar,
		Options: []string{"① are", "② studied", "③ calling", "④ uses", "⑤ lead"},
		Answer:  "calling",
	}
	assert.Nil(t, (&AnswerInOptionsCheck{}).Check(q))
}

func TestOptionCountCheck_WordScramble(t *testing.T) {
	c := &OptionCountCheck{}
	assert.Nil(t, c.Check(GeneratedQuestion{Type: qtype.WordScramble}))

	iss := c.Check(GeneratedQuestion{Type: qtype.WordScramble, Options: []string{"a"}})
	require.NotNil(t, iss)
	assert.Contains(t, iss.Message, "want 0")
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "markup[2]: missing blank markup", Issue{Check: "markup", Index: 2, Message: "missing blank markup"}.String())
	assert.Equal(t, "shape: x", Issue{Check: "shape", Index: -1, Message: "x"}.String())
}
