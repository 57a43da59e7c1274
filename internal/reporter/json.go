package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pthm/postcheck/internal/scoring"
)

// JSONReporter outputs the full result as indented JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput is the serialized report shape
type JSONOutput struct {
	Result  scoring.Result `json:"result"`
	Summary Summary        `json:"summary"`
}

// Report outputs the result as JSON
func (r *JSONReporter) Report(result scoring.Result) error {
	output := JSONOutput{
		Result:  result,
		Summary: ComputeSummary(result),
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Export writes the full result to a JSON file for downstream tooling
func Export(path string, result scoring.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := NewJSONReporter(f).Report(result); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
