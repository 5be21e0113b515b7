package tui

import "charm.land/lipgloss/v2"

// Palette. Clinical and calm rather than playful.
var (
	colPrimary = lipgloss.Color("#0EA5E9") // Sky
	colTutor   = lipgloss.Color("#F8FAFC") // White
	colLearner = lipgloss.Color("#A7F3D0") // Mint
	colDim     = lipgloss.Color("#94A3B8") // Slate
	colWarn    = lipgloss.Color("#F59E0B") // Amber
	colGood    = lipgloss.Color("#22C55E") // Green
	colBad     = lipgloss.Color("#F43F5E") // Rose
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary).
			Padding(0, 1)

	subtopicStyle = lipgloss.NewStyle().
			Foreground(colDim).
			Padding(0, 1)

	tutorStyle = lipgloss.NewStyle().
			Foreground(colTutor)

	tutorLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	learnerStyle = lipgloss.NewStyle().
			Foreground(colLearner)

	learnerLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(colLearner)

	hintStyle = lipgloss.NewStyle().
			Foreground(colDim).
			Italic(true)

	verdictStyles = map[string]lipgloss.Style{
		"understood": lipgloss.NewStyle().Foreground(colGood).Bold(true),
		"shaky":      lipgloss.NewStyle().Foreground(colWarn).Bold(true),
		"gap":        lipgloss.NewStyle().Foreground(colBad).Bold(true),
	}
)
