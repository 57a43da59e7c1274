package scoring

import (
	"fmt"
	"math"

	"github.com/pthm/postcheck/internal/features"
)

// analyzeQuality measures formatting and structural quality, independent of
// safety. The length and caps checks are two-tier else-if ladders (only the
// more severe tier fires); the newline and hashtag checks are independent.
// Starts at 100, floors at 0.
func (e *Engine) analyzeQuality(f features.Features) (float64, []Penalty, []string) {
	score := 100.0
	var penalties []Penalty
	var warnings []string

	t := e.profile.Thresholds

	if f.TextLength < 10 {
		score -= 30
		penalties = append(penalties, Penalty{
			Kind:        "TOO_SHORT",
			Severity:    SeverityMedium,
			Impact:      -30,
			Description: fmt.Sprintf("Post too short (%d chars)", f.TextLength),
			Details:     "Very short posts get less engagement",
		})
		warnings = append(warnings, fmt.Sprintf("Post too short (%d chars) - low engagement expected", f.TextLength))
	} else if f.TextLength < t.OptimalLengthMin {
		score -= 10
		penalties = append(penalties, Penalty{
			Kind:        "BELOW_OPTIMAL",
			Severity:    SeverityLow,
			Impact:      -10,
			Description: fmt.Sprintf("Below optimal length (%d chars)", f.TextLength),
			Details:     fmt.Sprintf("Aim for %d-%d chars", t.OptimalLengthMin, t.OptimalLengthMax),
		})
	}

	if f.CapsRatio > 0.5 {
		score -= 40
		penalties = append(penalties, Penalty{
			Kind:        "EXCESSIVE_CAPS",
			Severity:    SeverityHigh,
			Impact:      -40,
			Description: fmt.Sprintf("Excessive capitalization (%.1f%%)", f.CapsRatio*100),
			Details:     "May be flagged as spam or low quality",
		})
		warnings = append(warnings, fmt.Sprintf("HIGH: Excessive caps (%.0f%%) - looks like spam", f.CapsRatio*100))
	} else if f.CapsRatio > t.MaxCapsRatio {
		score -= 15
		penalties = append(penalties, Penalty{
			Kind:        "HIGH_CAPS",
			Severity:    SeverityMedium,
			Impact:      -15,
			Description: fmt.Sprintf("High capitalization (%.1f%%)", f.CapsRatio*100),
			Details:     "Reduces perceived quality",
		})
		warnings = append(warnings, fmt.Sprintf("High caps ratio (%.0f%%) - reduce for better quality", f.CapsRatio*100))
	}

	if f.NewlineCount > 10 {
		score -= 20
		penalties = append(penalties, Penalty{
			Kind:        "EXCESSIVE_NEWLINES",
			Severity:    SeverityMedium,
			Impact:      -20,
			Description: fmt.Sprintf("Excessive newlines (%d)", f.NewlineCount),
			Details:     "May be flagged as spam",
		})
		warnings = append(warnings, fmt.Sprintf("Too many newlines (%d) - may appear spammy", f.NewlineCount))
	}

	if f.HashtagCount > 5 {
		score -= 25
		penalties = append(penalties, Penalty{
			Kind:        "HASHTAG_SPAM",
			Severity:    SeverityMedium,
			Impact:      -25,
			Description: fmt.Sprintf("Too many hashtags (%d)", f.HashtagCount),
			Details:     "Reduces engagement, looks spammy",
		})
		warnings = append(warnings, fmt.Sprintf("Too many hashtags (%d) - use 1-3 max", f.HashtagCount))
	}

	return math.Max(score, 0), penalties, warnings
}
