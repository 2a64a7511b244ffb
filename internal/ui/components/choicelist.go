package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
)

// ChoiceList presents a question's four choices in a fixed display
// order. The order is supplied by the session's choice policy and never
// changes while the component lives.
//
// Selection is two-step, like the radio buttons it stands in for: the
// cursor moves freely, space (or the choice's letter key) arms a
// choice, and the screen submits whatever is armed — possibly nothing.
type ChoiceList struct {
	// Order is the latched display order of choice letters.
	Order []string
	// Choices maps letters to their display text.
	Choices map[string]string
	// Answer is the correct letter, used for outcome outlines.
	Answer string

	Cursor int
	// Armed is the letter marked for submission; empty means none.
	Armed string
	// Selected is the submitted letter; set by Lock.
	Selected string
	// Locked disables input once the question is answered.
	Locked bool
}

// NewChoiceList creates a choice list for one question.
func NewChoiceList(order []string, choices map[string]string, answer string) ChoiceList {
	return ChoiceList{
		Order:   order,
		Choices: choices,
		Answer:  answer,
	}
}

// Lock records the submitted letter and freezes the component, showing
// the selection with correct/incorrect outlines.
func (c ChoiceList) Lock(selected string) ChoiceList {
	c.Selected = selected
	c.Armed = selected
	c.Locked = true
	for i, letter := range c.Order {
		if letter == selected {
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles navigation and arming. Input is ignored once locked.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Locked {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Order)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Armed = c.Order[c.Cursor]
	default:
		// A choice's letter key arms it directly.
		upper := strings.ToUpper(key)
		for i, letter := range c.Order {
			if letter == upper {
				c.Cursor = i
				c.Armed = letter
				break
			}
		}
	}
	return c, nil
}

// View renders the choices with radio markers. After submission the
// correct choice is outlined green and a wrong selection red, matching
// the feedback rules of the quiz screen.
func (c ChoiceList) View() string {
	var s string
	for i, letter := range c.Order {
		marker := "( )"
		if letter == c.Armed {
			marker = "(•)"
		}

		prefix := "  "
		if !c.Locked && i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s) %s", prefix, marker, letter, c.Choices[letter])

		switch {
		case c.Locked && letter == c.Answer:
			s += theme.Correct.Render(line) + "\n"
		case c.Locked && letter == c.Selected && c.Selected != c.Answer:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
