package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// PassageInput wraps bubbles/textarea for multi-line passage entry.
type PassageInput struct {
	Model textarea.Model
}

// NewPassageInput creates an empty, unfocused passage editor.
func NewPassageInput(placeholder string) PassageInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	return PassageInput{Model: ta}
}

// Focus gives the editor keyboard focus.
func (p *PassageInput) Focus() tea.Cmd {
	return p.Model.Focus()
}

// Blur removes keyboard focus.
func (p *PassageInput) Blur() {
	p.Model.Blur()
}

// Focused reports whether the editor has focus.
func (p PassageInput) Focused() bool {
	return p.Model.Focused()
}

// SetSize sizes the editor in cells.
func (p *PassageInput) SetSize(width, height int) {
	p.Model.SetWidth(width)
	p.Model.SetHeight(height)
}

// Update handles messages.
func (p PassageInput) Update(msg tea.Msg) (PassageInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the editor.
func (p PassageInput) View() string {
	return p.Model.View()
}

// Value returns the current text.
func (p PassageInput) Value() string {
	return p.Model.Value()
}

// SetValue replaces the text.
func (p *PassageInput) SetValue(s string) {
	p.Model.SetValue(s)
}
