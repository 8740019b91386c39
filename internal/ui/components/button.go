package components

import (
	"github.com/abhisek/passagequiz/internal/ui/theme"
)

// Button renders a labelled action. Disabled buttons are drawn dimmed and
// show BusyLabel instead when Busy is set.
type Button struct {
	Label     string
	BusyLabel string
	Busy      bool
	Disabled  bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Busy && b.BusyLabel != "" {
		label = b.BusyLabel
	}
	if b.Busy || b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
