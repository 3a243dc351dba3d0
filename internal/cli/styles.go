package cli

import "github.com/charmbracelet/lipgloss"

// Palette shared with the watch view: green for healthy volumes and a running
// tray, red for low volumes and errors.
var (
	colorFg    = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorMuted = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorOK    = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorLow   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorWarn  = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorBrand = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	styleLabel   = lipgloss.NewStyle().Width(9).Foreground(colorMuted)
	styleHint    = lipgloss.NewStyle().Foreground(colorMuted)
	styleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorLow)
)
