package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passagequiz/internal/router"
	"github.com/abhisek/passagequiz/internal/screen"
	"github.com/abhisek/passagequiz/internal/screens/compose"
	"github.com/abhisek/passagequiz/internal/screens/results"
	"github.com/abhisek/passagequiz/internal/screens/welcome"
	"github.com/abhisek/passagequiz/internal/ui/layout"
	"github.com/abhisek/passagequiz/internal/workspace"
)

// Options configures the TUI.
type Options struct {
	Workspace *workspace.Workspace
	// Model is shown in the header.
	Model string
	// SkipWelcome starts directly on the compose screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	model  string
	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	ws := opts.Workspace
	newCompose := func() screen.Screen {
		return compose.New(ctx, ws, func() screen.Screen {
			return results.New(ctx, ws)
		})
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = newCompose()
	} else {
		initial = welcome.New(newCompose)
	}
	return AppModel{
		router: router.New(initial),
		model:  opts.Model,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.model, m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = []layout.KeyHint{{Key: "any key", Description: "Continue"}, {Key: "Ctrl+C", Description: "Quit"}}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
