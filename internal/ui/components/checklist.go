package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passagequiz/internal/ui/theme"
)

// ChecklistItem is one toggleable entry.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a vertical list of checkboxes navigated with the arrow
// keys and toggled with space or enter.
type Checklist struct {
	Items   []ChecklistItem
	Cursor  int
	Focused bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(labels []string) Checklist {
	items := make([]ChecklistItem, len(labels))
	for i, l := range labels {
		items[i] = ChecklistItem{Label: l}
	}
	return Checklist{Items: items}
}

// Update handles keyboard navigation and toggling. It ignores input while
// unfocused.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", "enter", "x":
		if c.Cursor >= 0 && c.Cursor < len(c.Items) {
			c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		}
	}
	return c, nil
}

// Checked returns the indexes of checked items in list order.
func (c Checklist) Checked() []int {
	var out []int
	for i, it := range c.Items {
		if it.Checked {
			out = append(out, i)
		}
	}
	return out
}

// SetChecked checks exactly the items whose index is in idx.
func (c *Checklist) SetChecked(idx []int) {
	for i := range c.Items {
		c.Items[i].Checked = false
	}
	for _, i := range idx {
		if i >= 0 && i < len(c.Items) {
			c.Items[i].Checked = true
		}
	}
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, it := range c.Items {
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		line := box + " " + it.Label
		switch {
		case c.Focused && i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n"
		case it.Checked:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  "+line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line) + "\n"
		}
	}
	return s
}
