package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/pthm/postcheck/internal/features"
)

// safetyFinding pairs a penalty with its operator-facing warning
type safetyFinding struct {
	penalty Penalty
	warning string
}

// analyzeSafety runs the four safety detectors in fixed order
// (toxicity, spam, NSFW, suspicious URL) against a starting score of 100.
// Penalties stack without capping against each other; the result floors at 0.
func (e *Engine) analyzeSafety(text string, f features.Features) (float64, []Penalty, []string) {
	score := 100.0
	var penalties []Penalty
	var warnings []string

	detectors := []func(string, features.Features) *safetyFinding{
		e.detectToxicity,
		e.detectSpam,
		e.detectNSFW,
		e.detectSuspiciousURLs,
	}

	for _, detect := range detectors {
		finding := detect(text, f)
		if finding == nil {
			continue
		}
		score += finding.penalty.Impact
		penalties = append(penalties, finding.penalty)
		warnings = append(warnings, finding.warning)
	}

	return math.Max(score, 0), penalties, warnings
}

func (e *Engine) detectToxicity(text string, _ features.Features) *safetyFinding {
	matches := e.toxicity.Classify(text)
	if len(matches) == 0 {
		return nil
	}

	impact := math.Min(float64(len(matches))*15, 60)
	severity := SeverityHigh
	if impact > 40 {
		severity = SeverityCritical
	}

	return &safetyFinding{
		penalty: Penalty{
			Kind:        "HIGH_TOXICITY",
			Severity:    severity,
			Impact:      -impact,
			Description: fmt.Sprintf("Toxic language detected: %d pattern(s)", len(matches)),
			Details:     "Matched: " + joinDistinct(matches, 3),
		},
		warning: "CRITICAL: Toxic language detected - may be filtered or downranked to the abusive-quality section",
	}
}

func (e *Engine) detectSpam(text string, _ features.Features) *safetyFinding {
	matches := e.spam.Classify(text)
	if len(matches) == 0 {
		return nil
	}

	impact := math.Min(float64(len(matches))*20, 70)
	severity := SeverityHigh
	if impact > 50 {
		severity = SeverityCritical
	}

	return &safetyFinding{
		penalty: Penalty{
			Kind:        "HIGH_SPAMMY_CONTENT",
			Severity:    severity,
			Impact:      -impact,
			Description: fmt.Sprintf("Spam patterns detected: %d indicator(s)", len(matches)),
			Details:     "Matched: " + joinDistinct(matches, 3),
		},
		warning: "CRITICAL: Spam indicators detected - may trigger the spam hard filter",
	}
}

func (e *Engine) detectNSFW(text string, _ features.Features) *safetyFinding {
	matches := e.nsfw.Classify(text)
	if len(matches) == 0 {
		return nil
	}

	return &safetyFinding{
		penalty: Penalty{
			Kind:        "NSFW_CONTENT",
			Severity:    SeverityCritical,
			Impact:      -50,
			Description: "NSFW content detected",
			Details:     "Matched: " + joinDistinct(matches, 3),
		},
		warning: "CRITICAL: NSFW content detected - may trigger the NSFW hard filter",
	}
}

func (e *Engine) detectSuspiciousURLs(_ string, f features.Features) *safetyFinding {
	if len(f.SuspiciousURLs) == 0 {
		return nil
	}

	urls := f.SuspiciousURLs
	if len(urls) > 2 {
		urls = urls[:2]
	}

	return &safetyFinding{
		penalty: Penalty{
			Kind:        "UNTRUSTED_URL",
			Severity:    SeverityHigh,
			Impact:      -40,
			Description: fmt.Sprintf("Suspicious URLs detected: %d", len(f.SuspiciousURLs)),
			Details:     "URLs: " + strings.Join(urls, ", "),
		},
		warning: "HIGH: Suspicious URLs may trigger abusive-quality downranking",
	}
}

// joinDistinct joins the first max distinct snippets in first-occurrence order
func joinDistinct(matches []string, max int) string {
	seen := make(map[string]bool, len(matches))
	var distinct []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		distinct = append(distinct, m)
		if len(distinct) == max {
			break
		}
	}
	return strings.Join(distinct, ", ")
}
