package export

import (
	"github.com/abhisek/passagequiz/internal/questiongen"
)

// Document strings shared by every surface that shows a question set.
const (
	DocumentTitle = "영어 변형 문제"
	AnswerPrefix  = "정답: "
	FileName      = "영어_변형문제.pdf"

	EmptyStateTitle = "생성된 문제가 여기에 표시됩니다."
	EmptyStateHint  = `지문을 입력하고, 문제 유형을 선택한 후 "문제 생성" 버튼을 누르세요.`
)

// Card is the view model of one rendered question.
type Card struct {
	Number      int
	Label       string
	Question    string
	Options     []string
	Answer      string
	Explanation string
	ShowAnswer  bool
}

// Document is the view model of a question set as shown on screen.
type Document struct {
	Title     string
	ShowTitle bool
	Cards     []Card
}

// NewDocument builds the on-screen view. shown reports whether the answer
// of question i is currently revealed; nil hides every answer.
func NewDocument(qs []questiongen.GeneratedQuestion, shown func(i int) bool) Document {
	doc := Document{Title: DocumentTitle, Cards: make([]Card, len(qs))}
	for i, q := range qs {
		doc.Cards[i] = Card{
			Number:      i + 1,
			Label:       q.Type.Label(),
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
			ShowAnswer:  shown != nil && shown(i),
		}
	}
	return doc
}

// Printable returns a deep copy prepared for print: the title is shown and
// every answer section is visible. The receiver is left untouched.
func (d Document) Printable() Document {
	out := Document{Title: d.Title, ShowTitle: true, Cards: make([]Card, len(d.Cards))}
	for i, c := range d.Cards {
		c.Options = append([]string(nil), c.Options...)
		c.ShowAnswer = true
		out.Cards[i] = c
	}
	return out
}
