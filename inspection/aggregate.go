package inspection

// Aggregate filters a run's outcomes down to what is worth publishing:
// providers that opted out are removed, and an aggregate with nothing to
// show at all collapses to nil. Zero-problem outcomes survive as long as
// some other outcome in the run has something to report, so the published
// slice always preserves the selected-provider order.
func Aggregate(outcomes []ProviderOutcome) []ProviderOutcome {
	kept := make([]ProviderOutcome, 0, len(outcomes))
	total := 0
	for _, o := range outcomes {
		if o.Ignored() {
			continue
		}
		total += len(o.Problems())
		kept = append(kept, o)
	}
	if len(kept) == 0 || total == 0 {
		return nil
	}
	return kept
}

// ProviderCount pairs a provider name with its problem count, in
// published order.
type ProviderCount struct {
	Provider string `json:"provider"`
	Problems int    `json:"problems"`
}

// Summary is the derived data external collaborators consume to drive
// panel titles, status-bar indicators and tooltips. The core exposes
// counts and names only; rendering strings belong to the collaborator.
type Summary struct {
	TotalProblems int             `json:"totalProblems"`
	Counts        []ProviderCount `json:"counts"`
	MaxSeverity   Severity        `json:"maxSeverity"`
	// MultiProvider is true when more than one provider contributed
	// problems, which drives a generic rather than provider-named label.
	MultiProvider bool `json:"multiProvider"`
}

// Summarize derives the summary for an aggregated outcome slice
func Summarize(outcomes []ProviderOutcome) Summary {
	s := Summary{Counts: make([]ProviderCount, 0, len(outcomes))}
	contributors := 0
	for _, o := range outcomes {
		problems := o.Problems()
		s.Counts = append(s.Counts, ProviderCount{
			Provider: o.Provider.Name(),
			Problems: len(problems),
		})
		s.TotalProblems += len(problems)
		if len(problems) > 0 {
			contributors++
		}
		for _, p := range problems {
			if p.Severity > s.MaxSeverity {
				s.MaxSeverity = p.Severity
			}
		}
	}
	s.MultiProvider = contributors > 1
	return s
}
