package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
)

// NameInput wraps bubbles/textinput for entering the learner's name on
// the setup screen.
type NameInput struct {
	Model textinput.Model
}

// NewNameInput creates a styled name input.
func NewNameInput(placeholder string, limit int) NameInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	return NameInput{Model: ti}
}

// Init returns the initial command.
func (n NameInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Focus puts the input into edit mode.
func (n NameInput) Focus() NameInput {
	n.Model.Focus()
	return n
}

// Blur leaves edit mode.
func (n NameInput) Blur() NameInput {
	n.Model.Blur()
	return n
}

// Update forwards messages to the inner model.
func (n NameInput) Update(msg tea.Msg) (NameInput, tea.Cmd) {
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Value returns the trimmed entered name.
func (n NameInput) Value() string {
	return strings.TrimSpace(n.Model.Value())
}

// View renders the input.
func (n NameInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(n.Model.View())
}
