package questiongen

import (
	"encoding/json"

	"github.com/abhisek/passagequiz/internal/qtype"
)

// DemoPassage is the sample text offered by "load demo".
const DemoPassage = `Cognitive biases are systematic patterns of deviation from norm or rationality in judgment. They are often studied in psychology and behavioral economics. Although the reality of most of these biases is confirmed by replicable research, there are often controversies about how to classify them or how to explain them. Some are effects of information-processing rules (i.e., mental shortcuts), called heuristics, that the brain uses to produce decisions or judgments. Such effects are called cognitive biases. Biases have a variety of forms and appear as cognitive "cold" bias, such as confirmation bias, or "hot" motivational or emotional bias, such as the tendency for people under stress to be more likely to believe threatening information. Both effects can lead to perceptual distortion, inaccurate judgment, illogical interpretation, or what is broadly called irrationality.`

// sampleQuestions is one well-formed question per type for DemoPassage,
// served by the mock provider.
var sampleQuestions = []GeneratedQuestion{
	{
		Type:     qtype.MainIdea,
		Question: "다음 글의 제목으로 가장 적절한 것은?",
		Options: []string{
			"Cognitive Biases: Systematic Errors in Human Judgment",
			"How Stress Improves Decision Making",
			"The History of Behavioral Economics",
			"Why Heuristics Always Lead to Correct Answers",
			"Emotional Intelligence in the Workplace",
		},
		Answer:      "Cognitive Biases: Systematic Errors in Human Judgment",
		Explanation: "글 전체가 판단에서 나타나는 체계적인 편향, 즉 인지 편향의 개념과 형태를 설명하고 있으므로 이 제목이 가장 적절하다.",
	},
	{
		Type:     qtype.Comprehension,
		Question: "윗글의 내용과 일치하지 않는 것은?",
		Options: []string{
			"Cognitive biases are studied in psychology.",
			"Heuristics are mental shortcuts the brain uses.",
			"There is no controversy about how to classify biases.",
			"Confirmation bias is an example of a cold bias.",
			"Biases can lead to inaccurate judgment.",
		},
		Answer:      "There is no controversy about how to classify biases.",
		Explanation: "글에서는 편향을 분류하고 설명하는 방법에 대해 종종 논란이 있다고 했으므로 일치하지 않는다.",
	},
	{
		Type:     qtype.FillInBlank,
		Question: "다음 빈칸에 들어갈 말로 가장 적절한 것은?\n\nSome are effects of information-processing rules, called _______, that the brain uses to produce decisions or judgments.",
		Options: []string{
			"heuristics",
			"emotions",
			"memories",
			"experiments",
			"regulations",
		},
		Answer:      "heuristics",
		Explanation: "정보 처리 규칙, 즉 정신적 지름길을 가리키는 말은 휴리스틱(heuristics)이다.",
	},
	{
		Type:     qtype.Grammar,
		Question: "Cognitive biases ①are systematic patterns of deviation from norm. They are often ②studied in psychology. Some are effects of rules ③calling heuristics, that the brain ④uses to produce decisions. Both effects can ⑤lead to perceptual distortion.\n\n위 글의 밑줄 친 부분 중, 어법상 틀린 것은?",
		Options: []string{
			"① are",
			"② studied",
			"③ calling",
			"④ uses",
			"⑤ lead",
		},
		Answer:      "③ calling",
		Explanation: "규칙이 휴리스틱이라고 '불리는' 것이므로 수동의 의미인 과거분사 called가 되어야 한다.",
	},
	{
		Type:     qtype.Vocabulary,
		Question: "Cognitive biases are ①systematic patterns of deviation. The reality of most biases is ②confirmed by replicable research. Heuristics are mental ③shortcuts. People under stress are more likely to ④reject threatening information. These effects can lead to ⑤inaccurate judgment.\n\n밑줄 친 부분 중 문맥상 낱말의 쓰임이 적절하지 않은 것은?",
		Options: []string{
			"① systematic",
			"② confirmed",
			"③ shortcuts",
			"④ reject",
			"⑤ inaccurate",
		},
		Answer:      "④ reject",
		Explanation: "스트레스를 받는 사람은 위협적인 정보를 더 '믿는' 경향이 있으므로 reject가 아니라 believe가 적절하다.",
	},
	{
		Type:     qtype.SentenceInsertion,
		Question: "글의 흐름으로 보아, 주어진 문장이 들어가기에 가장 적절한 곳은?\n\n[Such effects are called cognitive biases.]\n\nCognitive biases are systematic patterns of deviation from norm. [①] They are often studied in psychology. [②] There are often controversies about how to classify them. [③] Some are effects of mental shortcuts, called heuristics. [④] Biases have a variety of forms. [⑤]",
		Options:     []string{"①", "②", "③", "④", "⑤"},
		Answer:      "④",
		Explanation: "주어진 문장의 Such effects는 휴리스틱의 효과를 가리키므로 휴리스틱을 설명한 문장 바로 뒤인 ④가 적절하다.",
	},
	{
		Type:     qtype.ParagraphOrder,
		Question: "주어진 글 다음에 이어질 글의 순서로 가장 적절한 것은?\n\nCognitive biases are systematic patterns of deviation from norm or rationality in judgment.\n\n(A) Some are effects of mental shortcuts, called heuristics.\n(B) Although most are confirmed by research, there are controversies about how to classify them.\n(C) Both cold and hot biases can lead to what is broadly called irrationality.",
		Options: []string{
			"(A)-(C)-(B)",
			"(B)-(A)-(C)",
			"(B)-(C)-(A)",
			"(C)-(A)-(B)",
			"(C)-(B)-(A)",
		},
		Answer:      "(B)-(A)-(C)",
		Explanation: "편향의 분류 논란(B) 뒤에 그 일부인 휴리스틱의 효과(A)가 오고, 마지막으로 편향의 결과(C)가 이어진다.",
	},
	{
		Type:     qtype.SummaryCompletion,
		Question: "다음 글의 내용을 한 문장으로 요약하고자 한다. 빈칸 (A), (B)에 들어갈 말로 가장 적절한 것은?\n\nCognitive biases, often caused by mental (A), can lead people toward (B) judgments.",
		Options: []string{
			"shortcuts - irrational",
			"shortcuts - objective",
			"exercises - irrational",
			"exercises - accurate",
			"habits - reliable",
		},
		Answer:      "shortcuts - irrational",
		Explanation: "인지 편향은 정신적 지름길(shortcuts)에서 비롯되며 비합리적(irrational) 판단으로 이어질 수 있다.",
	},
	{
		Type:        qtype.WordScramble,
		Question:    "다음 우리말과 같은 뜻이 되도록 주어진 단어를 바르게 배열하시오.\n\n인지 편향은 판단에서의 체계적인 일탈 패턴이다.\n\n[ patterns / are / cognitive biases / of deviation / systematic ]",
		Answer:      "Cognitive biases are systematic patterns of deviation.",
		Explanation: "주어(Cognitive biases) + 동사(are) + 보어(systematic patterns of deviation)의 순서로 배열한다.",
	},
}

// SampleQuestions returns a copy of the fixture set.
func SampleQuestions() []GeneratedQuestion {
	out := make([]GeneratedQuestion, len(sampleQuestions))
	copy(out, sampleQuestions)
	return out
}

// SampleResponse encodes the fixture set the way a model answers: type
// fields carry the Korean labels listed in the prompt.
func SampleResponse() json.RawMessage {
	type wire struct {
		Type        string   `json:"type"`
		Question    string   `json:"question"`
		Options     []string `json:"options,omitempty"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
	}
	items := make([]wire, len(sampleQuestions))
	for i, q := range sampleQuestions {
		items[i] = wire{
			Type:        q.Type.Label(),
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}
	b, _ := json.Marshal(items)
	return b
}
