package console

import "github.com/charmbracelet/lipgloss"

// Adaptive colors readable on light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1FA8C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#50FA7B"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"}
)
