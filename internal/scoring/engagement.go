package scoring

import (
	"fmt"
	"math"

	"github.com/pthm/postcheck/internal/features"
)

// analyzeEngagement estimates upside from structural signals that correlate
// with reply/like/reshare likelihood. This is an additive-boost scale: it
// starts at a baseline of 50 and only ever goes up, capped at 100. The media
// boosts are mutually exclusive, selected by media type.
func (e *Engine) analyzeEngagement(f features.Features) (float64, []Boost) {
	score := 50.0
	var boosts []Boost

	t := e.profile.Thresholds

	if f.HasQuestion {
		score += 15
		boosts = append(boosts, Boost{
			Kind:        "HAS_QUESTION",
			Impact:      15,
			Description: "Question detected",
			Details:     "Questions increase reply likelihood",
		})
	}

	if f.HasMedia {
		var boost Boost
		switch f.MediaType {
		case "video":
			boost = Boost{
				Kind:        "VIDEO_MEDIA",
				Impact:      30,
				Description: "Video content",
				Details:     "Video gets highest engagement",
			}
		case "gif":
			boost = Boost{
				Kind:        "GIF_MEDIA",
				Impact:      20,
				Description: "GIF content",
				Details:     "GIFs boost engagement",
			}
		case "image":
			boost = Boost{
				Kind:        "IMAGE_MEDIA",
				Impact:      25,
				Description: "Image content",
				Details:     "Images significantly boost engagement",
			}
		default:
			boost = Boost{
				Kind:        "MEDIA",
				Impact:      20,
				Description: "Media present",
				Details:     "Media content boosts engagement",
			}
		}
		score += boost.Impact
		boosts = append(boosts, boost)
	}

	if f.TextLength >= t.SweetSpotMin && f.TextLength <= t.SweetSpotMax {
		score += 10
		boosts = append(boosts, Boost{
			Kind:        "OPTIMAL_LENGTH",
			Impact:      10,
			Description: fmt.Sprintf("Optimal length (%d chars)", f.TextLength),
			Details:     fmt.Sprintf("Sweet spot: %d-%d chars", t.SweetSpotMin, t.SweetSpotMax),
		})
	}

	if f.CapsRatio <= t.RecommendedCapsRatio {
		score += 5
		boosts = append(boosts, Boost{
			Kind:        "GOOD_FORMATTING",
			Impact:      5,
			Description: "Clean formatting",
			Details:     "Appropriate capitalization",
		})
	}

	return math.Min(score, 100), boosts
}
