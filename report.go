package codewatch

import (
	"github.com/goccy/go-json"

	"codewatch/inspection"
)

// Section is one provider's contribution to a report, in published order
type Section struct {
	Provider string               `json:"provider"`
	Problems []inspection.Problem `json:"problems"`
}

// Report is the structured aggregate handed to external collaborators.
// It carries counts, names and problems only; rendering strings (panel
// titles, tooltips) are the collaborator's concern.
type Report struct {
	Path     string             `json:"path"`
	Sections []Section          `json:"sections"`
	Summary  inspection.Summary `json:"summary"`
}

// BuildReport converts an aggregated outcome slice into a report.
// A nil outcome slice yields a nil report ("nothing to show").
func BuildReport(path string, outcomes []inspection.ProviderOutcome) *Report {
	if outcomes == nil {
		return nil
	}

	sections := make([]Section, len(outcomes))
	for i, o := range outcomes {
		sections[i] = Section{
			Provider: o.Provider.Name(),
			Problems: o.Problems(),
		}
	}

	return &Report{
		Path:     path,
		Sections: sections,
		Summary:  inspection.Summarize(outcomes),
	}
}

// MarshalReport serializes a report as JSON
func MarshalReport(r *Report) ([]byte, error) {
	return json.Marshal(r)
}
