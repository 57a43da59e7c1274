package scoring

import (
	"fmt"

	"github.com/pthm/postcheck/internal/features"
)

// recommend derives ordered, actionable advice from the feature set and the
// safety sub-score. Safety advice comes first, then quality, then engagement.
// The quality triggers here are deliberately looser than the penalty
// thresholds (hashtags > 3 vs > 5, newlines > 5 vs > 10) so advice fires
// before a penalty would.
func (e *Engine) recommend(f features.Features, safetyScore float64) []string {
	var recs []string

	t := e.profile.Thresholds

	if safetyScore < 70 {
		recs = append(recs, "Remove toxic/spam/NSFW language to avoid hard filters")
	}
	if len(f.SuspiciousURLs) > 0 {
		recs = append(recs, "Replace shortened/suspicious URLs with direct links")
	}

	if f.TextLength < t.OptimalLengthMin {
		recs = append(recs, fmt.Sprintf("Expand your post to %d+ characters for better engagement", t.OptimalLengthMin))
	}
	if f.CapsRatio > t.MaxCapsRatio {
		recs = append(recs, "Reduce capitalization - use sentence case instead")
	}
	if f.HashtagCount > 3 {
		recs = append(recs, fmt.Sprintf("Reduce hashtags to 1-3 (currently %d)", f.HashtagCount))
	}
	if f.NewlineCount > 5 {
		recs = append(recs, "Reduce excessive line breaks")
	}

	if !f.HasQuestion && f.TextLength > 50 {
		recs = append(recs, "Consider adding a question to boost replies")
	}
	if !f.HasMedia {
		recs = append(recs, "Add an image or video for a 20-30% engagement boost")
	}

	if f.TextLength >= t.OptimalLengthMin && f.TextLength < t.SweetSpotMin {
		recs = append(recs, fmt.Sprintf("Sweet spot is %d-%d chars for maximum engagement", t.SweetSpotMin, t.SweetSpotMax))
	}

	if len(recs) == 0 {
		recs = append(recs, "Looks good! This post should perform well.")
	}

	return recs
}
