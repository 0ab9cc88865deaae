package inspection

import (
	"sync"
)

// Preferences reprioritizes provider selection for one language id.
// Prefer lists provider names to move to the front, in order; names that
// match nothing are ignored. PreferredOnly restricts the selection to the
// preferred names alone.
type Preferences struct {
	Prefer        []string
	PreferredOnly bool
}

// Registry stores providers keyed by language id and computes the ordered,
// preference-filtered provider list for a file path. Registration is
// strictly additive: duplicate names are kept, nothing is deduplicated.
type Registry struct {
	mu         sync.RWMutex
	providers  map[string][]Provider
	prefs      map[string]Preferences
	extensions map[string]string
}

// NewRegistry creates an empty provider registry with the default
// extension-to-language table.
func NewRegistry() *Registry {
	extensions := make(map[string]string, len(defaultExtensions))
	for ext, lang := range defaultExtensions {
		extensions[ext] = lang
	}
	return &Registry{
		providers:  make(map[string][]Provider),
		prefs:      make(map[string]Preferences),
		extensions: extensions,
	}
}

// Register appends a provider to the list for languageID. Use LanguageAny
// to register a universal provider applied to every file.
func (r *Registry) Register(languageID string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[languageID] = append(r.providers[languageID], p)
}

// UnregisterAll clears every language's provider list and all preferences.
// This is a bulk reset; there is no per-provider removal.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers = make(map[string][]Provider)
	r.prefs = make(map[string]Preferences)
}

// SetPreferences installs preference overrides for one language id
func (r *Registry) SetPreferences(languageID string, p Preferences) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[languageID] = p
}

// MapExtension overrides the language id resolved for a file extension.
// The extension must include the leading dot.
func (r *Registry) MapExtension(ext, languageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.extensions[ext] = languageID
}

// LanguageForPath resolves the language id for a file path by extension.
// Unknown extensions yield the empty string.
func (r *Registry) LanguageForPath(path string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return languageForPath(path, r.extensions)
}

// SelectProviders returns the ordered provider list for a file path:
// language-specific providers in registration order, then universal ones,
// reordered and optionally restricted by the language's preferences.
// An unknown path or language yields an empty list, never an error.
func (r *Registry) SelectProviders(path string) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang := languageForPath(path, r.extensions)

	var selected []Provider
	if lang != "" {
		selected = append(selected, r.providers[lang]...)
	}
	selected = append(selected, r.providers[LanguageAny]...)

	prefs, ok := r.prefs[lang]
	if !ok || len(prefs.Prefer) == 0 {
		return selected
	}
	return applyPreferences(selected, prefs)
}

// applyPreferences moves preferred providers to the front in preference
// order. Remaining providers keep their relative order and follow, unless
// PreferredOnly restricts the result to the preferred set.
func applyPreferences(selected []Provider, prefs Preferences) []Provider {
	taken := make([]bool, len(selected))
	preferred := make([]Provider, 0, len(selected))

	for _, name := range prefs.Prefer {
		for i, p := range selected {
			if !taken[i] && p.Name() == name {
				taken[i] = true
				preferred = append(preferred, p)
			}
		}
	}

	if prefs.PreferredOnly {
		return preferred
	}

	for i, p := range selected {
		if !taken[i] {
			preferred = append(preferred, p)
		}
	}
	return preferred
}
