package scoring

import (
	"github.com/pthm/postcheck/internal/classifier"
	"github.com/pthm/postcheck/internal/features"
	"github.com/pthm/postcheck/internal/heuristic"
)

// Post is the input to a single analysis call
type Post struct {
	Text      string
	HasMedia  bool
	MediaType string
	IsReply   bool
}

// Engine scores posts against the simulated ranking heuristic. The compiled
// classifiers and thresholds are immutable after construction, so a single
// Engine is safe for concurrent use; all per-call state is local to Analyze.
type Engine struct {
	toxicity classifier.Classifier
	spam     classifier.Classifier
	nsfw     classifier.Classifier
	profile  *heuristic.Profile
}

// NewEngine builds an engine from a heuristic profile. The profile's pattern
// sets must already be compiled (Load and LoadFromFile do this).
func NewEngine(profile *heuristic.Profile) *Engine {
	return &Engine{
		toxicity: classifier.NewLexical("toxicity", profile.ToxicityPatterns()),
		spam:     classifier.NewLexical("spam", profile.SpamPatterns()),
		nsfw:     classifier.NewLexical("nsfw", profile.NSFWPatterns()),
		profile:  profile,
	}
}

// Analyze is the engine's sole entry point. It is a pure function: identical
// inputs always produce an identical Result, and it never fails (malformed
// URLs are absorbed as suspicious during feature extraction).
func (e *Engine) Analyze(post Post) Result {
	f := features.Extract(post.Text, post.HasMedia, post.MediaType, post.IsReply, e.profile.SuspiciousDomains)

	safetyScore, safetyPenalties, safetyWarnings := e.analyzeSafety(post.Text, f)
	qualityScore, qualityPenalties, qualityWarnings := e.analyzeQuality(f)
	engagementScore, boosts := e.analyzeEngagement(f)

	// Analyze never marks a post as coming from a followed account, so the
	// out-of-network reduction currently applies on every weighted call.
	overall := overallScore(safetyScore, qualityScore, engagementScore, false)
	risk := classifyRisk(overall, safetyPenalties)

	penalties := make([]Penalty, 0, len(safetyPenalties)+len(qualityPenalties))
	penalties = append(penalties, safetyPenalties...)
	penalties = append(penalties, qualityPenalties...)

	warnings := make([]string, 0, len(safetyWarnings)+len(qualityWarnings))
	warnings = append(warnings, safetyWarnings...)
	warnings = append(warnings, qualityWarnings...)

	return Result{
		OverallScore:    round1(clamp(overall)),
		RiskLevel:       risk,
		SafetyScore:     round1(clamp(safetyScore)),
		QualityScore:    round1(clamp(qualityScore)),
		EngagementScore: round1(clamp(engagementScore)),
		Penalties:       penalties,
		Boosts:          boosts,
		Warnings:        warnings,
		Recommendations: e.recommend(f, safetyScore),
		Features:        f,
	}
}

// overallScore combines the three sub-scores. Safety failures dominate: below
// 50 the weighted average is skipped entirely and no out-of-network reduction
// applies. On the weighted path the 0.85 multiplier simulates the ranking
// reduction for posts shown to accounts that do not follow the author.
func overallScore(safety, quality, engagement float64, fromFollowedAccount bool) float64 {
	if safety < 50 {
		return safety * 0.5
	}

	overall := safety*0.4 + quality*0.3 + engagement*0.3

	if !fromFollowedAccount {
		overall *= 0.85
	}

	return overall
}

// classifyRisk maps the overall score to a risk level. Any CRITICAL safety
// penalty forces CRITICAL risk regardless of the score.
func classifyRisk(overall float64, safetyPenalties []Penalty) RiskLevel {
	for _, p := range safetyPenalties {
		if p.Severity == SeverityCritical {
			return RiskCritical
		}
	}

	switch {
	case overall < 40:
		return RiskHigh
	case overall < 60:
		return RiskMedium
	default:
		return RiskLow
	}
}
