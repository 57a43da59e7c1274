package reporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/postcheck/internal/scoring"
	"github.com/pthm/postcheck/internal/ui"
)

// TerminalReporter renders the full analysis report to the terminal
type TerminalReporter struct {
	u *ui.UI
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(u *ui.UI) *TerminalReporter {
	return &TerminalReporter{u: u}
}

// Report renders the result: overall verdict, score breakdown, penalties,
// boosts, warnings, recommendations, and the content analysis block.
func (r *TerminalReporter) Report(result scoring.Result) error {
	w := r.u.Writer
	s := r.u.Styles

	sep := s.Separator.Render(strings.Repeat("─", 60))

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, s.Header.Render("Pre-Posting Analysis Report"))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w)

	riskStyle := r.riskStyle(result.RiskLevel)
	fmt.Fprintf(w, "%s %s\n",
		s.Score.Render(fmt.Sprintf("Overall score: %.1f/100", result.OverallScore)),
		riskStyle.Render(fmt.Sprintf("[risk: %s]", result.RiskLevel)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.Subheader.Render("Score breakdown"))
	fmt.Fprintf(w, "  Safety:      %5.1f/100\n", result.SafetyScore)
	fmt.Fprintf(w, "  Quality:     %5.1f/100\n", result.QualityScore)
	fmt.Fprintf(w, "  Engagement:  %5.1f/100\n", result.EngagementScore)
	fmt.Fprintln(w)

	if len(result.Penalties) > 0 {
		fmt.Fprintln(w, s.Subheader.Render("Penalties"))
		for _, p := range result.Penalties {
			style, icon := r.severityStyle(p.Severity)
			fmt.Fprintf(w, "  %s %s %s\n",
				style.Render(icon),
				style.Render(fmt.Sprintf("[%s] %s", p.Severity, p.Kind)),
				fmt.Sprintf("%.0f%%", p.Impact))
			fmt.Fprintf(w, "    %s\n", p.Description)
			if p.Details != "" {
				fmt.Fprintln(w, s.Detail.Render("    "+p.Details))
			}
		}
		fmt.Fprintln(w)
	}

	if len(result.Boosts) > 0 {
		fmt.Fprintln(w, s.Subheader.Render("Engagement boosts"))
		for _, b := range result.Boosts {
			fmt.Fprintf(w, "  %s %s\n",
				s.Boost.Render(fmt.Sprintf("%s%.0f%% %s", s.IconBoost, b.Impact, b.Kind)),
				b.Description)
			if b.Details != "" {
				fmt.Fprintln(w, s.Detail.Render("    "+b.Details))
			}
		}
		fmt.Fprintln(w)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, s.Subheader.Render("Warnings"))
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  %s %s\n", s.Warning.Render(s.IconMedium), warning)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, s.Subheader.Render("Recommendations"))
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "  %s %s\n", s.Success.Render("•"), rec)
	}
	fmt.Fprintln(w)

	r.printFeatures(result)
	fmt.Fprintln(w, sep)

	return nil
}

func (r *TerminalReporter) printFeatures(result scoring.Result) {
	w := r.u.Writer
	s := r.u.Styles
	f := result.Features

	fmt.Fprintln(w, s.Subheader.Render("Content analysis"))
	fmt.Fprintf(w, "  Length:         %d characters\n", f.TextLength)
	fmt.Fprintf(w, "  Capitalization: %.1f%%\n", f.CapsRatio*100)
	fmt.Fprintf(w, "  Question marks: %d\n", f.QuestionCount)
	fmt.Fprintf(w, "  URLs:           %d\n", f.URLCount)
	fmt.Fprintf(w, "  Mentions:       %d\n", f.MentionCount)
	fmt.Fprintf(w, "  Hashtags:       %d\n", f.HashtagCount)
	fmt.Fprintf(w, "  Has media:      %t\n", f.HasMedia)
	if f.HasMedia {
		fmt.Fprintf(w, "  Media type:     %s\n", f.MediaType)
	}
	fmt.Fprintln(w)
}

func (r *TerminalReporter) riskStyle(risk scoring.RiskLevel) lipgloss.Style {
	s := r.u.Styles
	switch risk {
	case scoring.RiskCritical:
		return s.Critical
	case scoring.RiskHigh:
		return s.High
	case scoring.RiskMedium:
		return s.Medium
	default:
		return s.Success
	}
}

func (r *TerminalReporter) severityStyle(sev scoring.Severity) (lipgloss.Style, string) {
	s := r.u.Styles
	switch sev {
	case scoring.SeverityCritical:
		return s.Critical, s.IconCritical
	case scoring.SeverityHigh:
		return s.High, s.IconHigh
	case scoring.SeverityMedium:
		return s.Medium, s.IconMedium
	default:
		return s.Low, s.IconLow
	}
}
