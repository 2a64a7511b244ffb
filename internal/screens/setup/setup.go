package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/vocabdrill/vocabdrill/internal/audio"
	"github.com/vocabdrill/vocabdrill/internal/quiz"
	"github.com/vocabdrill/vocabdrill/internal/router"
	"github.com/vocabdrill/vocabdrill/internal/screen"
	"github.com/vocabdrill/vocabdrill/internal/screens/play"
	"github.com/vocabdrill/vocabdrill/internal/ui/components"
	"github.com/vocabdrill/vocabdrill/internal/ui/layout"
	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

// Focusable rows, top to bottom.
const (
	focusName = iota
	focusList
	focusSize
	focusShuffle
	focusBuild
	focusCount
)

// sizeOptions are the selectable sample sizes; 0 means the whole list.
var sizeOptions = []int{5, 10, 20, 50, 100, 0}

// Screen is the quiz setup form: learner name, word list, sample size,
// choice shuffling, and the build action.
type Screen struct {
	registry *wordlist.Registry
	events   quiz.EventSink
	cues     *audio.Cues
	log      *zap.Logger

	name    components.NameInput
	lists   []string
	listIdx int
	sizeIdx int
	shuffle bool
	focus   int

	status    string
	statusBad bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the setup screen.
func New(registry *wordlist.Registry, events quiz.EventSink, cues *audio.Cues, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	lists := registry.Names()
	listIdx := 0
	for i, name := range lists {
		if name == registry.DefaultName() {
			listIdx = i
			break
		}
	}
	return &Screen{
		registry: registry,
		events:   events,
		cues:     cues,
		log:      log,
		name:     components.NewNameInput("Who is practicing?", 24).Focus(),
		lists:    lists,
		listIdx:  listIdx,
		sizeIdx:  1, // 10 questions
		status:   "Ready. Please select a user first.",
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *Screen) Title() string {
	return "Build a Quiz"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Next / Build"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == focusName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		s.setFocus(s.focus - 1)
		return s, nil
	case "down", "tab":
		s.setFocus(s.focus + 1)
		return s, nil
	case "enter":
		// The keypress affordance resolves to whichever action is
		// active: the build row builds, any other row steps onward.
		if s.focus == focusBuild {
			return s, s.build()
		}
		s.setFocus(s.focus + 1)
		return s, nil
	}

	switch s.focus {
	case focusName:
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		s.refreshStatus()
		return s, cmd
	case focusList:
		switch kmsg.String() {
		case "left", "h":
			s.listIdx = (s.listIdx - 1 + len(s.lists)) % len(s.lists)
		case "right", "l":
			s.listIdx = (s.listIdx + 1) % len(s.lists)
		}
	case focusSize:
		switch kmsg.String() {
		case "left", "h":
			s.sizeIdx = (s.sizeIdx - 1 + len(sizeOptions)) % len(sizeOptions)
		case "right", "l":
			s.sizeIdx = (s.sizeIdx + 1) % len(sizeOptions)
		}
	case focusShuffle:
		switch kmsg.String() {
		case "left", "right", "h", "l", "space", " ":
			s.shuffle = !s.shuffle
		}
	}
	return s, nil
}

func (s *Screen) setFocus(f int) {
	if f < 0 {
		f = 0
	}
	if f >= focusCount {
		f = focusCount - 1
	}
	s.focus = f
	if s.focus == focusName {
		s.name = s.name.Focus()
	} else {
		s.name = s.name.Blur()
	}
}

func (s *Screen) refreshStatus() {
	if s.name.Value() == "" {
		s.status = "Ready. Please select a user first."
		s.statusBad = false
		return
	}
	s.status = fmt.Sprintf("User: %s. Ready to build quiz.", s.name.Value())
	s.statusBad = false
}

// build validates the selection context and starts a fresh session,
// discarding whatever came before it.
func (s *Screen) build() tea.Cmd {
	user := s.name.Value()
	if user == "" {
		s.status = "Please select a user first."
		s.statusBad = true
		return nil
	}

	// First user gesture that makes sound: acquires the audio device.
	s.cues.Build()

	listName := s.lists[s.listIdx]
	ds, err := s.registry.Resolve(listName)
	if err != nil {
		if errors.Is(err, wordlist.ErrEmptyDataset) {
			s.status = fmt.Sprintf("Word list %q has no questions.", listName)
		} else {
			s.status = err.Error()
		}
		s.statusBad = true
		return nil
	}

	sess, err := quiz.Start(ds, quiz.Options{
		User:           user,
		List:           ds.Name,
		Size:           sizeOptions[s.sizeIdx],
		ShuffleChoices: s.shuffle,
		Events:         s.events,
	})
	if err != nil {
		s.status = err.Error()
		s.statusBad = true
		return nil
	}

	s.status = fmt.Sprintf("User: %s. Using %d question(s) out of %d. Randomized order.",
		user, sess.Len(), len(ds.Questions))
	s.statusBad = false
	s.log.Info("quiz built",
		zap.String("session", sess.ID),
		zap.String("list", ds.Name),
		zap.Int("questions", sess.Len()),
		zap.Bool("shuffle", s.shuffle))

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(sess, ds, s.cues)}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	row := func(focused bool, label, value string) string {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if focused {
			prefix = "▸ "
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
			valueStyle = valueStyle.Bold(true)
		}
		return prefix + labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
	}

	sizeLabel := "All"
	if sizeOptions[s.sizeIdx] > 0 {
		sizeLabel = fmt.Sprintf("%d", sizeOptions[s.sizeIdx])
	}
	shuffleLabel := "Off"
	if s.shuffle {
		shuffleLabel = "On"
	}

	b.WriteString(theme.Title.Render("Vocabulary Quiz"))
	b.WriteString("\n\n")
	b.WriteString(row(s.focus == focusName, "User", s.name.View()))
	b.WriteString("\n")
	b.WriteString(row(s.focus == focusList, "Word list", "◂ "+s.lists[s.listIdx]+" ▸"))
	b.WriteString("\n")
	b.WriteString(row(s.focus == focusSize, "Questions", "◂ "+sizeLabel+" ▸"))
	b.WriteString("\n")
	b.WriteString(row(s.focus == focusShuffle, "Shuffle choices", shuffleLabel))
	b.WriteString("\n\n")

	buildBtn := components.NewButton("Build Quiz", s.focus == focusBuild, nil)
	b.WriteString("  " + buildBtn.View())
	b.WriteString("\n\n")

	statusStyle := theme.Good
	if s.statusBad {
		statusStyle = theme.Bad
	}
	b.WriteString("  " + statusStyle.Render(s.status))

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
