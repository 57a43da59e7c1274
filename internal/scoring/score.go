// Package scoring implements the pre-posting analysis engine: three
// independent sub-scorers (safety, quality, engagement), aggregation into an
// overall score and risk level, and recommendation generation.
package scoring

import (
	"fmt"
	"math"

	"github.com/pthm/postcheck/internal/features"
)

// Severity represents the severity tier of a penalty
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their tier names
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LOW":
		*s = SeverityLow
	case "MEDIUM":
		*s = SeverityMedium
	case "HIGH":
		*s = SeverityHigh
	case "CRITICAL":
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity: %s", text)
	}
	return nil
}

// RiskLevel is the discrete classification summarizing overall post risk
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	case RiskCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler
func (r RiskLevel) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *RiskLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LOW":
		*r = RiskLow
	case "MEDIUM":
		*r = RiskMedium
	case "HIGH":
		*r = RiskHigh
	case "CRITICAL":
		*r = RiskCritical
	default:
		return fmt.Errorf("unknown risk level: %s", text)
	}
	return nil
}

// Penalty is a scoring deduction triggered by a detected negative signal.
// Impact is the signed percentage effect on the sub-score (always negative).
type Penalty struct {
	Kind        string   `json:"kind"`
	Severity    Severity `json:"severity"`
	Impact      float64  `json:"impact"`
	Description string   `json:"description"`
	Details     string   `json:"details,omitempty"`
}

// Boost is a scoring addition triggered by a detected positive signal.
// Impact is always positive.
type Boost struct {
	Kind        string  `json:"kind"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
	Details     string  `json:"details,omitempty"`
}

// Result is the engine's sole output: a plain value object, never mutated
// after construction. Penalty and boost lists preserve detector order.
type Result struct {
	OverallScore    float64           `json:"overall_score"`
	RiskLevel       RiskLevel         `json:"risk_level"`
	SafetyScore     float64           `json:"safety_score"`
	QualityScore    float64           `json:"quality_score"`
	EngagementScore float64           `json:"engagement_potential"`
	Penalties       []Penalty         `json:"penalties"`
	Boosts          []Boost           `json:"boosts"`
	Warnings        []string          `json:"warnings"`
	Recommendations []string          `json:"recommendations"`
	Features        features.Features `json:"feature_breakdown"`
}

// round1 rounds to one decimal place, the documented precision of all scores
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// clamp bounds a score to [0, 100]
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
