package play

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocabdrill/vocabdrill/internal/audio"
	"github.com/vocabdrill/vocabdrill/internal/quiz"
	"github.com/vocabdrill/vocabdrill/internal/router"
	"github.com/vocabdrill/vocabdrill/internal/screen"
	"github.com/vocabdrill/vocabdrill/internal/screens/summary"
	"github.com/vocabdrill/vocabdrill/internal/ui/components"
	"github.com/vocabdrill/vocabdrill/internal/ui/layout"
	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

// Screen runs one quiz session question by question. It is a pure
// consumer of the session engine: all bookkeeping lives in the session,
// all presentation here.
type Screen struct {
	session *quiz.Session
	ds      *wordlist.Dataset
	cues    *audio.Cues

	choices  components.ChoiceList
	answered bool
	feedback string
	notice   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates the play screen for a freshly started session.
func New(session *quiz.Session, ds *wordlist.Dataset, cues *audio.Cues) *Screen {
	s := &Screen{session: session, ds: ds, cues: cues}
	s.loadQuestion()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.session.List
}

// HeaderStatus supplies the score pill and progress for the header.
func (s *Screen) HeaderStatus() string {
	pos := s.session.Index() + 1
	if pos > s.session.Len() {
		pos = s.session.Len()
	}
	return fmt.Sprintf("Score: %d   %d / %d", s.session.Score(), pos, s.session.Len())
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/A-D", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "N", Description: "Skip"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// loadQuestion builds the choice list for the question at the cursor,
// with the session's latched display order.
func (s *Screen) loadQuestion() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	s.choices = components.NewChoiceList(s.session.ChoiceOrder(q), q.Choices, q.Answer)
	s.answered = false
	s.feedback = ""
	s.notice = ""
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.answered {
		switch kmsg.String() {
		case "enter", "n":
			return s, s.advance()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.submit()
	case "n":
		// Skipping without answering is allowed; the question simply
		// never gains an answer record.
		return s, s.advance()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *Screen) submit() tea.Cmd {
	outcome, err := s.session.Submit(s.choices.Armed)
	if err != nil {
		if errors.Is(err, quiz.ErrNoSelection) {
			s.notice = "Please select an answer."
			return nil
		}
		return nil
	}

	s.answered = true
	s.notice = ""
	s.choices = s.choices.Lock(s.choices.Armed)

	if outcome.Correct {
		s.feedback = theme.Correct.Render("Correct!")
		s.cues.Correct()
	} else {
		s.feedback = theme.Incorrect.Render(fmt.Sprintf(
			"Incorrect. Correct answer: %s) %s", outcome.CorrectLetter, outcome.CorrectText))
		s.cues.Wrong()
	}
	return nil
}

func (s *Screen) advance() tea.Cmd {
	s.session.Advance()
	if !s.session.Done() {
		s.loadQuestion()
		return nil
	}

	sum, err := s.session.Summarize()
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, s.ds, s.cues)}
	}
}

func (s *Screen) View(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d", q.Number))
	idPill := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("ID: %d", q.Number))
	b.WriteString(meta + "   " + idPill)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Word))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(theme.Bad.Render(s.notice))
		b.WriteString("\n")
	}
	if s.feedback != "" {
		b.WriteString(s.feedback)
		b.WriteString("\n")
		b.WriteString(components.RenderDefinition(s.ds, q.Word))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bar := components.NewScoreBar(
		s.session.Score(),
		s.session.AnsweredCount()-s.session.Score(),
		s.session.Len(),
		min(width-20, 40),
	)
	b.WriteString(bar.View())

	card := theme.Card.Width(min(width-4, 70)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
