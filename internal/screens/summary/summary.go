package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocabdrill/vocabdrill/internal/audio"
	"github.com/vocabdrill/vocabdrill/internal/celebration"
	"github.com/vocabdrill/vocabdrill/internal/quiz"
	"github.com/vocabdrill/vocabdrill/internal/router"
	"github.com/vocabdrill/vocabdrill/internal/screen"
	"github.com/vocabdrill/vocabdrill/internal/ui/components"
	"github.com/vocabdrill/vocabdrill/internal/ui/layout"
	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

// confettiRows is the height of the celebration strip above the stats.
const confettiRows = 7

// frameMsg drives the confetti animation.
type frameMsg time.Time

// Screen shows the terminal session summary: totals, accuracy, the
// missed-word review list, and a time-limited confetti celebration.
type Screen struct {
	sum  quiz.Summary
	ds   *wordlist.Dataset
	cues *audio.Cues

	confetti *celebration.Field
	width    int
	done     bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the summary screen for a finished session.
func New(sum quiz.Summary, ds *wordlist.Dataset, cues *audio.Cues) *Screen {
	return &Screen{sum: sum, ds: ds, cues: cues}
}

func (s *Screen) Init() tea.Cmd {
	s.cues.Celebration()
	return tickFrame()
}

func tickFrame() tea.Cmd {
	return tea.Tick(celebration.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (s *Screen) Title() string {
	return "Summary"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if s.confetti != nil {
			s.confetti.Resize(msg.Width, confettiRows)
		}
		return s, nil

	case frameMsg:
		if s.done {
			return s, nil
		}
		if s.confetti == nil {
			w := s.width
			if w <= 0 {
				w = layout.MinWidth
			}
			s.confetti = celebration.New(w, confettiRows, nil)
		}
		if s.confetti.Expired() {
			// The effect self-terminates; drop it and stop ticking.
			s.confetti = nil
			s.done = true
			return s, nil
		}
		s.confetti.Step()
		return s, tickFrame()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// Back to setup. A new build also implicitly cancels any
			// still-running celebration, since this screen goes away.
			s.confetti = nil
			s.done = true
			return s, func() tea.Msg { return router.ResetScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	if s.confetti != nil {
		b.WriteString(s.confetti.Render())
		b.WriteString("\n")
		badge := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("★  G R E A T   J O B !  ★")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
		b.WriteString("\n\n")
	} else {
		b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
		b.WriteString("\n\n")
	}

	stats := fmt.Sprintf("Total: %d    Correct: %d    Incorrect: %d    Accuracy: %d%%",
		s.sum.Total, s.sum.Correct, s.sum.Incorrect, s.sum.Accuracy)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))
	b.WriteString("\n")

	mins := int(s.sum.TimeSpent.Minutes())
	secs := int(s.sum.TimeSpent.Seconds()) % 60
	timing := fmt.Sprintf("Time: %d:%02d    Answered: %d of %d",
		mins, secs, s.sum.QuestionsAnswered, s.sum.Total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(timing)))
	b.WriteString("\n\n")

	b.WriteString(s.renderMissed(width))

	return b.String()
}

// renderMissed builds the review panel of missed words in quiz order,
// or the distinguished no-misses message.
func (s *Screen) renderMissed(width int) string {
	var b strings.Builder

	heading := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Missed words")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, heading))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if s.sum.Perfect() {
		msg := theme.Good.Render("Great job — no missed words!")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
		b.WriteString("\n")
		return b.String()
	}

	innerWidth := min(width-8, 64)
	for _, q := range s.sum.Missed {
		word := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(q.Word)
		def := components.RenderDefinition(s.ds, q.Word)
		item := word + "\n" + lipgloss.NewStyle().Width(innerWidth).Render(def)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(innerWidth).Render(item)))
		b.WriteString("\n\n")
	}
	return b.String()
}
