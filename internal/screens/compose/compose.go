// Package compose is the screen where the passage is entered and the
// question types are chosen.
package compose

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/router"
	"github.com/abhisek/passagequiz/internal/screen"
	"github.com/abhisek/passagequiz/internal/ui/components"
	"github.com/abhisek/passagequiz/internal/ui/layout"
	"github.com/abhisek/passagequiz/internal/ui/theme"
	"github.com/abhisek/passagequiz/internal/workspace"
)

type focus int

const (
	focusPassage focus = iota
	focusTypes
)

// generatedMsg reports the end of a generation started by this screen.
type generatedMsg struct {
	err error
}

// ComposeScreen edits the workspace passage and type selection and starts
// generation.
type ComposeScreen struct {
	ctx     context.Context
	ws      *workspace.Workspace
	results func() screen.Screen

	passage components.PassageInput
	types   components.Checklist
	focus   focus
	spinner spinner.Model

	busy    bool
	notice  string
	message string
}

var (
	_ screen.Screen          = (*ComposeScreen)(nil)
	_ screen.KeyHintProvider = (*ComposeScreen)(nil)
	_ screen.Activator       = (*ComposeScreen)(nil)
)

// New creates the compose screen over ws. results builds the screen pushed
// after a successful generation.
func New(ctx context.Context, ws *workspace.Workspace, results func() screen.Screen) *ComposeScreen {
	labels := make([]string, 0, len(qtype.All()))
	for _, t := range qtype.All() {
		labels = append(labels, t.Label())
	}
	s := &ComposeScreen{
		ctx:     ctx,
		ws:      ws,
		results: results,
		passage: components.NewPassageInput("영어 지문을 입력하세요."),
		types:   components.NewChecklist(labels),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(theme.Selected)),
	}
	s.syncFromWorkspace()
	return s
}

func (s *ComposeScreen) Init() tea.Cmd {
	return s.passage.Focus()
}

func (s *ComposeScreen) Title() string {
	return "문제 만들기"
}

// Activate re-reads the workspace when the results screen is closed.
func (s *ComposeScreen) Activate() tea.Cmd {
	s.syncFromWorkspace()
	return nil
}

func (s *ComposeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "지문/유형 전환"},
	}
	if s.focus == focusTypes {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "유형 선택"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+G", Description: "문제 생성"},
		layout.KeyHint{Key: "Ctrl+D", Description: "예시 지문"},
	)
	if len(s.ws.Snapshot().Result) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "결과 보기"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "종료"})
}

func (s *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s, s.handleGenerated(msg)

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			return s, s.toggleFocus()
		case "ctrl+g":
			return s, s.generate()
		case "ctrl+d":
			if s.busy {
				return s, nil
			}
			s.ws.LoadDemo()
			s.passage.SetValue(s.ws.Snapshot().Passage)
			return s, nil
		case "ctrl+r":
			if s.busy {
				return s, nil
			}
			s.ws.Reset()
			s.syncFromWorkspace()
			return s, nil
		case "ctrl+o":
			if len(s.ws.Snapshot().Result) > 0 {
				return s, s.openResults()
			}
			return s, nil
		}
		if s.busy {
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusPassage:
		s.passage, cmd = s.passage.Update(msg)
	case focusTypes:
		s.types, cmd = s.types.Update(msg)
	}
	return s, cmd
}

func (s *ComposeScreen) toggleFocus() tea.Cmd {
	if s.focus == focusPassage {
		s.focus = focusTypes
		s.passage.Blur()
		s.types.Focused = true
		return nil
	}
	s.focus = focusPassage
	s.types.Focused = false
	return s.passage.Focus()
}

// generate pushes the editor state into the workspace and runs the
// generation in the background.
func (s *ComposeScreen) generate() tea.Cmd {
	if s.busy {
		return nil
	}
	s.syncToWorkspace()
	s.busy = true
	s.notice = ""
	s.message = ""

	ctx, ws := s.ctx, s.ws
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		return generatedMsg{err: ws.Generate(ctx)}
	})
}

func (s *ComposeScreen) handleGenerated(msg generatedMsg) tea.Cmd {
	s.busy = false
	st := s.ws.Snapshot()
	s.message = st.Message

	if msg.err != nil {
		if errors.Is(msg.err, workspace.ErrBusy) {
			s.notice = "이미 문제를 생성하고 있습니다."
		}
		return nil
	}
	if len(st.Result) == 0 {
		s.notice = "생성된 문제가 없습니다. 다시 시도해주세요."
		return nil
	}
	return s.openResults()
}

func (s *ComposeScreen) openResults() tea.Cmd {
	next := s.results()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *ComposeScreen) syncToWorkspace() {
	s.ws.SetPassage(s.passage.Value())
	all := qtype.All()
	selected := make([]qtype.Type, 0, len(all))
	for _, i := range s.checkedInOrder() {
		selected = append(selected, all[i])
	}
	// Every entry comes from the catalog, so this cannot fail.
	_ = s.ws.SelectTypes(selected)
}

// checkedInOrder keeps the workspace's existing selection order and
// appends newly checked types after it.
func (s *ComposeScreen) checkedInOrder() []int {
	all := qtype.All()
	checked := make(map[int]bool)
	for _, i := range s.types.Checked() {
		checked[i] = true
	}

	var out []int
	for _, t := range s.ws.Snapshot().Types {
		for i, c := range all {
			if c == t && checked[i] {
				out = append(out, i)
				delete(checked, i)
			}
		}
	}
	for _, i := range s.types.Checked() {
		if checked[i] {
			out = append(out, i)
		}
	}
	return out
}

func (s *ComposeScreen) syncFromWorkspace() {
	st := s.ws.Snapshot()
	s.passage.SetValue(st.Passage)
	var idx []int
	for i, t := range qtype.All() {
		if st.Selected(t) {
			idx = append(idx, i)
		}
	}
	s.types.SetChecked(idx)
	s.message = st.Message
}

func (s *ComposeScreen) View(width, height int) string {
	typesWidth := 34
	var passageWidth, passageHeight int
	compact := layout.IsCompactWidth(width)
	if compact {
		passageWidth = width - 4
		passageHeight = height - len(qtype.All()) - 10
	} else {
		passageWidth = width - typesWidth - 8
		passageHeight = height - 8
	}
	if passageHeight < 3 {
		passageHeight = 3
	}
	s.passage.SetSize(passageWidth, passageHeight)

	passageStyle, typesStyle := theme.Panel, theme.Panel
	if s.focus == focusPassage {
		passageStyle = theme.PanelFocused
	} else {
		typesStyle = theme.PanelFocused
	}

	passagePanel := passageStyle.Render(
		theme.Title.Render("1. 지문 입력") + "\n" + s.passage.View())

	button := components.Button{Label: "문제 생성 (Ctrl+G)", BusyLabel: s.spinner.View() + " 생성 중...", Busy: s.busy}
	typesPanel := typesStyle.Render(
		theme.Title.Render("2. 문제 유형 선택") + "\n" + s.types.View() + "\n" + button.View())

	var body string
	if compact {
		body = lipgloss.JoinVertical(lipgloss.Left, passagePanel, typesPanel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, passagePanel, " ", typesPanel)
	}

	var status []string
	if s.message != "" {
		status = append(status, theme.ErrorText.Render(s.message))
	}
	if s.notice != "" {
		status = append(status, theme.Notice.Render(s.notice))
	}
	if len(status) == 0 && len(s.ws.Snapshot().Result) == 0 && !s.busy {
		status = append(status, theme.Hint.Render(export.EmptyStateHint))
	}

	return body + "\n" + strings.Join(status, "\n")
}

// Selected returns the checked types in catalog order.
func (s *ComposeScreen) Selected() []qtype.Type {
	all := qtype.All()
	var out []qtype.Type
	for _, i := range s.types.Checked() {
		out = append(out, all[i])
	}
	return out
}

// Passage returns the editor text.
func (s *ComposeScreen) Passage() string {
	return s.passage.Value()
}
