package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — bright study-app colors on a dark ground
var (
	Primary   = lipgloss.Color("#1B6BFF") // Blue
	Secondary = lipgloss.Color("#00BBF9") // Cyan
	Accent    = lipgloss.Color("#FFB703") // Amber
	Success   = lipgloss.Color("#03D387") // Green
	Error     = lipgloss.Color("#FF5A5F") // Coral
	Highlight = lipgloss.Color("#9B5DE5") // Purple
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1220") // Deep Navy
	BgCard    = lipgloss.Color("#16213A") // Dark Slate
	Border    = lipgloss.Color("#32405E") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Bad = lipgloss.NewStyle().
		Foreground(Error)

	// Mark emphasizes word occurrences inside definition examples.
	Mark = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Underline(true)
)

// Components
var (
	ScoreCorrect = lipgloss.NewStyle().
			Background(Success)

	ScoreIncorrect = lipgloss.NewStyle().
			Background(Error)

	ScoreEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
