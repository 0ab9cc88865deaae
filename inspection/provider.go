package inspection

import (
	"context"
	"fmt"
)

// Severity classifies a problem. Higher values are more severe.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// MarshalJSON serializes the severity as its string name
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a severity from its string name
func (s *Severity) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' {
		b = b[1 : len(b)-1]
	}
	sev, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ParseSeverity converts a severity name to its Severity value
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", name)
	}
}

// NoLine marks a problem that has no specific location in the document.
const NoLine = -1

// Position locates a problem within a document. Line may be NoLine.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// HasLine reports whether the position points at an actual line
func (p Position) HasLine() bool {
	return p.Line >= 0
}

// Fix is an optional replacement a provider suggests for a problem
type Fix struct {
	ReplacementText string `json:"replacementText"`
	RangeStart      int    `json:"rangeStart"`
	RangeEnd        int    `json:"rangeEnd"`
}

// Problem is a single finding reported by a provider
type Problem struct {
	Position Position `json:"position"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Fix      *Fix     `json:"fix,omitempty"`
}

// ScanResult is what a provider returns for one document.
// Ignored means the provider declines to report for this file; such
// results never contribute a section to the aggregate.
type ScanResult struct {
	Problems []Problem `json:"problems"`
	Aborted  bool      `json:"aborted,omitempty"`
	Ignored  bool      `json:"ignored,omitempty"`
}

// Provider is a pluggable document analyzer registered under a language id.
// Every provider must additionally implement SyncProvider, AsyncProvider,
// or both; when both are implemented the async capability is authoritative
// and the sync one is never invoked.
type Provider interface {
	// Name identifies the provider for preference matching and display
	Name() string
}

// SyncProvider analyzes a document inline on the calling goroutine
type SyncProvider interface {
	Provider
	Scan(content []byte, path string) (*ScanResult, error)
}

// AsyncProvider analyzes a document on its own schedule. The context is
// advisory: a provider that outlives its timeout budget keeps running and
// its eventual result is discarded, never cancelled mid-flight.
type AsyncProvider interface {
	Provider
	ScanAsync(ctx context.Context, content []byte, path string) (*ScanResult, error)
}
