// Package reporter renders an analysis result for humans (styled terminal
// report) or machines (JSON). It carries no analytical logic.
package reporter

import (
	"github.com/pthm/postcheck/internal/scoring"
)

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the analysis result
	Report(result scoring.Result) error
}

// Summary holds tallies for a single analysis
type Summary struct {
	TotalPenalties int `json:"total_penalties"`
	Critical       int `json:"critical"`
	High           int `json:"high"`
	Medium         int `json:"medium"`
	Low            int `json:"low"`
	Boosts         int `json:"boosts"`
}

// ComputeSummary computes penalty/boost tallies from a result
func ComputeSummary(result scoring.Result) Summary {
	s := Summary{
		TotalPenalties: len(result.Penalties),
		Boosts:         len(result.Boosts),
	}

	for _, p := range result.Penalties {
		switch p.Severity {
		case scoring.SeverityCritical:
			s.Critical++
		case scoring.SeverityHigh:
			s.High++
		case scoring.SeverityMedium:
			s.Medium++
		case scoring.SeverityLow:
			s.Low++
		}
	}

	return s
}
