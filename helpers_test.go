package codewatch

import (
	"codewatch/inspection"
)

// stubProvider is a minimal synchronous provider for API-level tests
type stubProvider struct {
	name   string
	result *inspection.ScanResult
	err    error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Scan(content []byte, path string) (*inspection.ScanResult, error) {
	return s.result, s.err
}

func warningAt(line int, message string) inspection.Problem {
	return inspection.Problem{
		Position: inspection.Position{Line: line, Column: 1},
		Message:  message,
		Severity: inspection.SeverityWarning,
	}
}
