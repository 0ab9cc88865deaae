package inspection

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ResultEvent notifies subscribers that an inspection run published.
// Outcomes is nil when the run found nothing to report (the collaborator
// clears its panel for the path).
type ResultEvent struct {
	Path       string
	Generation uint64
	Outcomes   []ProviderOutcome
	Summary    Summary
}

// ResultListener receives published inspection results
type ResultListener func(ResultEvent)

// Engine orchestrates inspection runs: it owns the per-path generation
// counters, fans out to the dispatcher for every selected provider, and
// suppresses publication of superseded runs.
type Engine struct {
	registry   *Registry
	dispatcher *Dispatcher

	mu          sync.Mutex
	generations map[string]uint64
	disabled    bool
	listeners   []ResultListener
}

// NewEngine creates an engine over the given registry with the default
// per-provider timeout.
func NewEngine(registry *Registry) *Engine {
	return &Engine{
		registry:    registry,
		dispatcher:  NewDispatcher(DefaultTimeout),
		generations: make(map[string]uint64),
	}
}

// Registry returns the provider registry this engine selects from
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Dispatcher returns the engine's scan dispatcher
func (e *Engine) Dispatcher() *Dispatcher {
	return e.dispatcher
}

// Subscribe adds a listener for published inspection results
func (e *Engine) Subscribe(l ResultListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// SetEnabled gates publication. External collaborators also consult it to
// decide whether editor events should trigger inspection at all; a direct
// Inspect call always runs. Disabling suppresses publication of every
// in-flight run, exactly as if each file's generation had been bumped.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = !enabled
}

// Enabled reports whether automatic inspection triggering is enabled
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.disabled
}

// nextGeneration allocates a new current generation for a path, strictly
// greater than any previously allocated one for the same path.
func (e *Engine) nextGeneration(path string) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generations[path]++
	return e.generations[path]
}

// Inspect runs every selected provider against the document concurrently
// and returns the aggregated outcomes in selected-provider order, or nil
// when there is nothing to report. The result is always returned to the
// caller; the corresponding ResultEvent is emitted only when this run is
// still the current one for the path and the engine is enabled.
//
// Re-triggering inspection for the same path does not cancel an earlier
// run's dispatches; it only invalidates their eventual publication.
func (e *Engine) Inspect(ctx context.Context, path string, content []byte) []ProviderOutcome {
	providers := e.registry.SelectProviders(path)
	if len(providers) == 0 {
		return nil
	}

	generation := e.nextGeneration(path)

	outcomes := make([]ProviderOutcome, len(providers))
	var g errgroup.Group
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			outcomes[i] = e.dispatcher.Dispatch(ctx, p, content, path)
			return nil
		})
	}
	// Dispatches never error; Wait only synchronizes settlement.
	_ = g.Wait()

	result := Aggregate(outcomes)

	// Single staleness arbitration point: read the current generation once,
	// after every dispatch has settled, so a partially stale run is dropped
	// as a whole rather than partially published.
	e.mu.Lock()
	current := e.generations[path] == generation && !e.disabled
	listeners := make([]ResultListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	if current {
		event := ResultEvent{
			Path:       path,
			Generation: generation,
			Outcomes:   result,
			Summary:    Summarize(result),
		}
		for _, l := range listeners {
			l(event)
		}
	}

	return result
}
