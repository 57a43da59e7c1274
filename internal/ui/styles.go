package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity / risk styles
	Critical lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
	Success  lipgloss.Style
	Boost    lipgloss.Style
	Warning  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Score     lipgloss.Style
	Detail    lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconCritical string
	IconHigh     string
	IconMedium   string
	IconLow      string
	IconBoost    string
	IconSuccess  string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Critical = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red bold
		s.High = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))                // Red
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))             // Yellow
		s.Low = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))                // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // Green
		s.Boost = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))              // Cyan
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // Yellow

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Bold(true)
		s.Score = lipgloss.NewStyle().Bold(true)
		s.Detail = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconCritical = "✗" // ✗
		s.IconHigh = "✗"
		s.IconMedium = "⚠" // ⚠
		s.IconLow = "ℹ"    // ℹ
		s.IconBoost = "+"
		s.IconSuccess = "✓" // ✓
	} else {
		s.Critical = lipgloss.NewStyle()
		s.High = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Low = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Boost = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Score = lipgloss.NewStyle()
		s.Detail = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconCritical = "CRIT:"
		s.IconHigh = "HIGH:"
		s.IconMedium = "MED:"
		s.IconLow = "LOW:"
		s.IconBoost = "+"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is active
func (s *Styles) Enabled() bool {
	return s.enabled
}
