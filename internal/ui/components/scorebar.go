package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
)

// ScoreBar is the running score strip: a green run for correct answers
// and a red run for incorrect ones, each proportional to its share of
// the whole quiz, over a neutral remainder.
type ScoreBar struct {
	Correct   int
	Incorrect int
	Total     int
	Width     int
}

// NewScoreBar creates a score bar for a quiz of total questions.
func NewScoreBar(correct, incorrect, total, width int) ScoreBar {
	return ScoreBar{Correct: correct, Incorrect: incorrect, Total: total, Width: width}
}

// CellWidths returns the bar cell counts (green, red, empty).
func (s ScoreBar) CellWidths() (int, int, int) {
	barWidth := s.Width
	if barWidth < 4 {
		barWidth = 4
	}
	total := s.Total
	if total < 1 {
		total = 1
	}

	green := int(math.Round(float64(barWidth) * float64(s.Correct) / float64(total)))
	red := int(math.Round(float64(barWidth) * float64(s.Incorrect) / float64(total)))
	if green+red > barWidth {
		red = barWidth - green
	}
	if red < 0 {
		red = 0
	}
	return green, red, barWidth - green - red
}

// View renders the bar with end counts.
func (s ScoreBar) View() string {
	green, red, empty := s.CellWidths()

	bar := theme.ScoreCorrect.Render(strings.Repeat(" ", green)) +
		theme.ScoreIncorrect.Render(strings.Repeat(" ", red)) +
		theme.ScoreEmpty.Render(strings.Repeat(" ", empty))

	counts := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf(" ✓ %d", s.Correct)) +
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("  ✗ %d", s.Incorrect))

	return bar + counts
}
