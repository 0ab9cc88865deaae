package inspection

import (
	"context"
	"fmt"
	"time"
)

// OutcomeKind tags the variants of a ProviderOutcome
type OutcomeKind int

const (
	// OutcomeCompleted means the provider settled with a ScanResult
	OutcomeCompleted OutcomeKind = iota
	// OutcomeFailed means the provider returned an error or panicked
	OutcomeFailed
	// OutcomeTimedOut means the provider exceeded the timeout budget
	OutcomeTimedOut
)

// ProviderOutcome is the per-provider result of one inspection run.
// Completed outcomes carry Result; Failed and TimedOut outcomes carry a
// single synthetic Problem in Errors attributed to the provider.
type ProviderOutcome struct {
	Provider Provider
	Kind     OutcomeKind
	Result   *ScanResult
	Errors   []Problem
}

// Ignored reports whether the provider explicitly opted out for this file
func (o ProviderOutcome) Ignored() bool {
	return o.Kind == OutcomeCompleted && o.Result != nil && o.Result.Ignored
}

// Problems returns the problems this outcome contributes to a report:
// the scan result's problems for completed outcomes, the synthetic error
// entries otherwise.
func (o ProviderOutcome) Problems() []Problem {
	if o.Kind == OutcomeCompleted {
		if o.Result == nil {
			return nil
		}
		return o.Result.Problems
	}
	return o.Errors
}

// DefaultTimeout is the per-provider budget for asynchronous scans when
// no asyncTimeoutMs preference is configured.
const DefaultTimeout = 10 * time.Second

// Dispatcher invokes a single provider against document content, enforcing
// the timeout budget and isolating failures. Every dispatch settles: panics,
// errors and timeouts become outcomes, never escape to the caller.
type Dispatcher struct {
	timeout time.Duration
}

// NewDispatcher creates a dispatcher with the given per-provider timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewDispatcher(timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{timeout: timeout}
}

// SetTimeout updates the per-provider timeout budget
func (d *Dispatcher) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		d.timeout = timeout
	}
}

// Timeout returns the per-provider timeout budget
func (d *Dispatcher) Timeout() time.Duration {
	return d.timeout
}

// Dispatch runs one provider against the document. The async capability is
// authoritative when present; the sync path is only used for providers
// without one.
func (d *Dispatcher) Dispatch(ctx context.Context, p Provider, content []byte, path string) ProviderOutcome {
	if ap, ok := p.(AsyncProvider); ok {
		return d.dispatchAsync(ctx, ap, content, path)
	}
	if sp, ok := p.(SyncProvider); ok {
		return dispatchSync(sp, content, path)
	}
	return failedOutcome(p, fmt.Sprintf("provider %q implements neither Scan nor ScanAsync", p.Name()))
}

func dispatchSync(p SyncProvider, content []byte, path string) (out ProviderOutcome) {
	out = ProviderOutcome{Provider: p}
	defer func() {
		if r := recover(); r != nil {
			out = failedOutcome(p, fmt.Sprintf("provider %q panicked: %v", p.Name(), r))
		}
	}()

	result, err := p.Scan(content, path)
	if err != nil {
		return failedOutcome(p, fmt.Sprintf("provider %q failed: %v", p.Name(), err))
	}
	out.Kind = OutcomeCompleted
	out.Result = result
	return out
}

type asyncReply struct {
	result *ScanResult
	err    error
}

func (d *Dispatcher) dispatchAsync(ctx context.Context, p AsyncProvider, content []byte, path string) ProviderOutcome {
	// Buffered so a late settlement never blocks the provider goroutine;
	// after a timeout the reply is simply never read.
	reply := make(chan asyncReply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				reply <- asyncReply{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		result, err := p.ScanAsync(ctx, content, path)
		reply <- asyncReply{result: result, err: err}
	}()

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	select {
	case r := <-reply:
		if r.err != nil {
			return failedOutcome(p, fmt.Sprintf("provider %q failed: %v", p.Name(), r.err))
		}
		return ProviderOutcome{Provider: p, Kind: OutcomeCompleted, Result: r.result}
	case <-timer.C:
		return timedOutOutcome(p, d.timeout)
	case <-ctx.Done():
		return failedOutcome(p, fmt.Sprintf("provider %q failed: %v", p.Name(), ctx.Err()))
	}
}

func failedOutcome(p Provider, message string) ProviderOutcome {
	return ProviderOutcome{
		Provider: p,
		Kind:     OutcomeFailed,
		Errors: []Problem{{
			Position: Position{Line: NoLine, Column: 0},
			Message:  message,
			Severity: SeverityError,
		}},
	}
}

func timedOutOutcome(p Provider, timeout time.Duration) ProviderOutcome {
	return ProviderOutcome{
		Provider: p,
		Kind:     OutcomeTimedOut,
		Errors: []Problem{{
			Position: Position{Line: NoLine, Column: 0},
			Message:  fmt.Sprintf("provider %q timed out after %dms", p.Name(), timeout.Milliseconds()),
			Severity: SeverityError,
		}},
	}
}
