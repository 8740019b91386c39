package qtype

// Shape describes how a question is answered.
type Shape string

const (
	ShapeMultipleChoice Shape = "multiple_choice"
	ShapeFreeResponse   Shape = "free_response"
)

// Markup is the structural marker a question body must carry.
type Markup string

const (
	MarkupNone              Markup = "none"
	MarkupBlank             Markup = "blank"              // _______
	MarkupNumberedUnderline Markup = "numbered-underline" // ①..⑤ on underlined segments
	MarkupInsertionPoints   Markup = "insertion-points"   // [①]..[⑤]
	MarkupParagraphBlocks   Markup = "paragraph-blocks"   // (A) (B) (C)
	MarkupSummaryBlanks     Markup = "summary-blanks"     // (A) and (B) inside one summary sentence
)

// AnswerField describes what the answer field must contain.
type AnswerField string

const (
	AnswerOptionText       AnswerField = "option-text"       // full text of the correct option
	AnswerIncorrectSegment AnswerField = "incorrect-segment" // the flawed underlined option
	AnswerSentence         AnswerField = "sentence"          // the complete correct sentence
)

// MultipleChoiceOptions is the option count every multiple-choice type uses.
const MultipleChoiceOptions = 5

// Rule is the generation contract for one question type.
type Rule struct {
	Shape       Shape
	OptionCount int
	Markup      Markup
	AnswerField AnswerField
	// Text is the hand-authored paragraph inserted into the prompt.
	Text string
}

var rules = map[Type]Rule{
	MainIdea: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupNone,
		AnswerField: AnswerOptionText,
		Text: "Ask for the main idea, topic, or best title of the passage. " +
			"Provide 5 distinct options.",
	},
	Comprehension: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupNone,
		AnswerField: AnswerOptionText,
		Text: "Ask which statement is true, or not true, according to the passage. " +
			"Provide 5 options.",
	},
	FillInBlank: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupBlank,
		AnswerField: AnswerOptionText,
		Text: "Pick a key sentence and replace a crucial phrase with a blank ('_______'). " +
			"Provide 5 options that could fill the blank.",
	},
	Grammar: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupNumberedUnderline,
		AnswerField: AnswerIncorrectSegment,
		Text: "Rewrite part of the passage with 5 underlined segments labeled ①, ②, ③, ④, ⑤. " +
			"Exactly one segment must contain a grammatical error. The 'question' field holds this text " +
			"followed by \"위 글의 밑줄 친 부분 중, 어법상 틀린 것은?\". The 'options' are the 5 underlined " +
			"segments and the 'answer' is the incorrect segment.",
	},
	Vocabulary: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupNumberedUnderline,
		AnswerField: AnswerIncorrectSegment,
		Text: "Like the grammar type, but the flaw is a word that does not fit its context. " +
			"Rewrite part of the passage with 5 underlined words labeled ①, ②, ③, ④, ⑤, exactly one of " +
			"them contextually inappropriate. The 'question' field holds this text followed by " +
			"\"밑줄 친 부분 중 문맥상 낱말의 쓰임이 적절하지 않은 것은?\". The 'options' are the 5 underlined " +
			"words and the 'answer' is the inappropriate word.",
	},
	SentenceInsertion: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupInsertionPoints,
		AnswerField: AnswerOptionText,
		Text: "Give a sentence that fits logically somewhere in the passage. The question is " +
			"\"글의 흐름으로 보아, 주어진 문장이 들어가기에 가장 적절한 곳은?\" followed by the boxed sentence. " +
			"The passage in the 'question' field carries numbered insertion points [①], [②], [③], [④], [⑤]. " +
			"The options are ['①', '②', '③', '④', '⑤'].",
	},
	ParagraphOrder: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupParagraphBlocks,
		AnswerField: AnswerOptionText,
		Text: "Start with an introductory sentence from the passage, then split the rest into three " +
			"blocks labeled (A), (B) and (C). The prompt is \"주어진 글 다음에 이어질 글의 순서로 가장 적절한 것은?\" " +
			"and the 'question' field contains the blocks. The options are orderings such as " +
			"'(A)-(C)-(B)' and '(B)-(A)-(C)'.",
	},
	SummaryCompletion: {
		Shape:       ShapeMultipleChoice,
		OptionCount: MultipleChoiceOptions,
		Markup:      MarkupSummaryBlanks,
		AnswerField: AnswerOptionText,
		Text: "Write a one-sentence summary of the passage with one or two blanks, (A) and (B). " +
			"The options are word choices for the blanks.",
	},
	WordScramble: {
		Shape:       ShapeFreeResponse,
		OptionCount: 0,
		Markup:      MarkupNone,
		AnswerField: AnswerSentence,
		Text: "Select a key sentence from the passage and list its words in scrambled order. " +
			"Ask the student to arrange them into the correct sentence, optionally with a Korean " +
			"translation hint. Do not provide options for this type. The 'answer' is the complete, " +
			"correct sentence.",
	},
}

// Rule returns the generation rule for t. The zero Rule is returned for
// types outside the catalog.
func (t Type) Rule() Rule {
	return rules[t]
}

// MultipleChoice reports whether t expects an options list.
func (t Type) MultipleChoice() bool {
	return rules[t].Shape == ShapeMultipleChoice
}
