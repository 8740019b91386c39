// Package results shows the generated question set and exports it.
package results

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/screen"
	"github.com/abhisek/passagequiz/internal/ui/layout"
	"github.com/abhisek/passagequiz/internal/ui/theme"
	"github.com/abhisek/passagequiz/internal/workspace"
)

var optionMarkers = []string{"①", "②", "③", "④", "⑤"}

// exportedMsg reports the end of an export.
type exportedMsg struct {
	path string
	err  error
}

// ResultsScreen lists the question cards. One card is selected at a time;
// its answer can be revealed and the whole set saved as a PDF.
type ResultsScreen struct {
	ctx context.Context
	ws  *workspace.Workspace

	cursor    int
	top       int
	exporting bool
	spinner   spinner.Model
	notice    string
	failed    bool
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
)

// New creates the results screen over ws.
func New(ctx context.Context, ws *workspace.Workspace) *ResultsScreen {
	return &ResultsScreen{
		ctx:     ctx,
		ws:      ws,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(theme.Selected)),
	}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string {
	return fmt.Sprintf("생성된 문제 (%d)", len(s.ws.Snapshot().Result))
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "문제 이동"},
		{Key: "Enter", Description: "정답 및 해설"},
		{Key: "P", Description: "PDF로 저장"},
		{Key: "Esc", Description: "돌아가기"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		s.exporting = false
		s.failed = msg.err != nil
		switch {
		case msg.err == nil:
			s.notice = "PDF 저장 완료: " + msg.path
		case errors.Is(msg.err, workspace.ErrExporting):
			s.notice = "PDF를 저장하고 있습니다."
		default:
			s.notice = export.UserMessage(msg.err)
		}
		return s, nil

	case spinner.TickMsg:
		if !s.exporting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		n := len(s.ws.Snapshot().Result)
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < n-1 {
				s.cursor++
			}
		case "enter", "space":
			s.ws.ToggleAnswer(s.cursor)
		case "p":
			return s, s.export()
		}
	}
	return s, nil
}

func (s *ResultsScreen) export() tea.Cmd {
	if s.exporting {
		return nil
	}
	s.exporting = true
	s.notice = ""
	ctx, ws := s.ctx, s.ws
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		path, err := ws.Export(ctx)
		return exportedMsg{path: path, err: err}
	})
}

func (s *ResultsScreen) View(width, height int) string {
	doc := s.ws.Snapshot().Document()

	var status string
	switch {
	case s.exporting:
		status = theme.Notice.Render(s.spinner.View() + " 저장 중...")
	case s.notice != "" && s.failed:
		status = theme.ErrorText.Render(s.notice)
	case s.notice != "":
		status = theme.Notice.Render(s.notice)
	}

	if len(doc.Cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render(export.EmptyStateTitle)+"\n"+status)
	}

	available := height
	if status != "" {
		available -= lipgloss.Height(status) + 1
	}

	cardWidth := width - 2
	cards := make([]string, len(doc.Cards))
	for i, c := range doc.Cards {
		cards[i] = renderCard(c, i == s.cursor, cardWidth)
	}

	// Scroll by whole cards so the selected one is always visible.
	if s.cursor < s.top {
		s.top = s.cursor
	}
	for s.top < s.cursor && stackHeight(cards[s.top:s.cursor+1]) > available {
		s.top++
	}

	var visible []string
	used := 0
	for _, c := range cards[s.top:] {
		h := lipgloss.Height(c)
		if used+h > available && len(visible) > 0 {
			break
		}
		visible = append(visible, c)
		used += h
	}

	out := strings.Join(visible, "\n")
	if status != "" {
		out += "\n" + status
	}
	return out
}

func stackHeight(cards []string) int {
	h := 0
	for _, c := range cards {
		h += lipgloss.Height(c)
	}
	return h
}

func renderCard(c export.Card, selected bool, width int) string {
	inner := width - 4
	text := lipgloss.NewStyle().Width(inner)

	lines := []string{
		theme.Label.Render(c.Label),
		text.Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d. %s", c.Number, c.Question)),
	}
	for j, opt := range c.Options {
		marker := fmt.Sprintf("%d.", j+1)
		if j < len(optionMarkers) {
			marker = optionMarkers[j]
		}
		lines = append(lines, text.Foreground(theme.Text).Render("  "+marker+" "+opt))
	}
	if c.ShowAnswer {
		lines = append(lines,
			"",
			theme.Answer.Render(export.AnswerPrefix+c.Answer),
			text.Foreground(theme.Success).Render(c.Explanation),
		)
	} else {
		lines = append(lines, theme.Hint.Render("Enter: 정답 및 해설 보기"))
	}

	style := theme.Card
	if selected {
		style = theme.CardSelected
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// Cursor returns the index of the selected card.
func (s *ResultsScreen) Cursor() int {
	return s.cursor
}
