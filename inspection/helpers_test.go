package inspection

import (
	"context"
	"fmt"
	"sync/atomic"
)

// syncStub is a synchronous-only provider with configurable behavior
type syncStub struct {
	name      string
	fn        func(content []byte, path string) (*ScanResult, error)
	scanCount int32
}

func (s *syncStub) Name() string { return s.name }

func (s *syncStub) Scan(content []byte, path string) (*ScanResult, error) {
	atomic.AddInt32(&s.scanCount, 1)
	if s.fn != nil {
		return s.fn(content, path)
	}
	return &ScanResult{}, nil
}

// asyncStub is an asynchronous-only provider. When block is set, ScanAsync
// waits on it before settling; started (if set) is closed once the scan has
// begun so tests can sequence races without sleeping.
type asyncStub struct {
	name      string
	fn        func(ctx context.Context, content []byte, path string) (*ScanResult, error)
	block     chan struct{}
	started   chan struct{}
	scanCount int32
}

func (a *asyncStub) Name() string { return a.name }

func (a *asyncStub) ScanAsync(ctx context.Context, content []byte, path string) (*ScanResult, error) {
	if atomic.AddInt32(&a.scanCount, 1) == 1 && a.started != nil {
		close(a.started)
	}
	if a.block != nil {
		<-a.block
	}
	if a.fn != nil {
		return a.fn(ctx, content, path)
	}
	return &ScanResult{}, nil
}

// dualStub implements both capabilities so tests can prove the async one
// is authoritative.
type dualStub struct {
	asyncStub
	syncCalls int32
}

func (d *dualStub) Scan(content []byte, path string) (*ScanResult, error) {
	atomic.AddInt32(&d.syncCalls, 1)
	return &ScanResult{Problems: problems(99)}, nil
}

// problems generates n distinct problems
func problems(n int) []Problem {
	ps := make([]Problem, n)
	for i := range ps {
		ps[i] = Problem{
			Position: Position{Line: i + 1, Column: 1},
			Message:  fmt.Sprintf("problem %d", i+1),
			Severity: SeverityWarning,
		}
	}
	return ps
}

// resultWith builds a completed scan result carrying n problems
func resultWith(n int) *ScanResult {
	return &ScanResult{Problems: problems(n)}
}

// names extracts provider names in order
func names(providers []Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.Name()
	}
	return out
}

// outcomeNames extracts provider names from outcomes in order
func outcomeNames(outcomes []ProviderOutcome) []string {
	out := make([]string, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Provider.Name()
	}
	return out
}
