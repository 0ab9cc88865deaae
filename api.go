package codewatch

import (
	"context"
	"fmt"
	"os"

	"codewatch/inspection"
)

// API is the main entry point for the codewatch library. It owns one
// provider registry and one inspection engine; external collaborators
// (panel, status bar, editor event hooks) talk to the engine through it.
type API struct {
	registry *inspection.Registry
	engine   *inspection.Engine
}

// New creates an API instance with an empty registry and defaults
func New() *API {
	registry := inspection.NewRegistry()
	return &API{
		registry: registry,
		engine:   inspection.NewEngine(registry),
	}
}

// NewWithConfig creates an API instance and applies the given configuration
func NewWithConfig(config *AppConfig) (*API, error) {
	api := New()
	if err := api.ApplyConfig(config); err != nil {
		return nil, err
	}
	return api, nil
}

// ApplyConfig applies timeout, preference, extension and command-provider
// settings to the registry and engine.
func (a *API) ApplyConfig(config *AppConfig) error {
	if config == nil {
		return nil
	}

	if timeout := config.AsyncTimeout(); timeout > 0 {
		a.engine.Dispatcher().SetTimeout(timeout)
	}
	if config.Enabled != nil {
		a.engine.SetEnabled(*config.Enabled)
	}

	for ext, lang := range config.Extensions {
		a.registry.MapExtension(ext, lang)
	}

	for lang, langConfig := range config.Languages {
		prefs := inspection.Preferences{
			Prefer: langConfig.PreferProviders,
		}
		if langConfig.PreferredOnly != nil {
			prefs.PreferredOnly = *langConfig.PreferredOnly
		}
		a.registry.SetPreferences(lang, prefs)
	}

	for _, pc := range config.Providers {
		provider, err := inspection.NewCommandProvider(pc.Name, pc.Command)
		if err != nil {
			return fmt.Errorf("invalid provider config: %w", err)
		}
		a.registry.Register(pc.Language, provider)
	}

	return nil
}

// Registry returns the provider registry
func (a *API) Registry() *inspection.Registry {
	return a.registry
}

// Engine returns the inspection engine
func (a *API) Engine() *inspection.Engine {
	return a.engine
}

// Register appends a provider to the list for languageID
func (a *API) Register(languageID string, p inspection.Provider) {
	a.registry.Register(languageID, p)
}

// UnregisterAll clears every registered provider and preference
func (a *API) UnregisterAll() {
	a.registry.UnregisterAll()
}

// SelectProviders returns the ordered provider list for a file path
func (a *API) SelectProviders(path string) []inspection.Provider {
	return a.registry.SelectProviders(path)
}

// Inspect runs every selected provider against the document and returns
// the aggregated outcomes, or nil when there is nothing to report.
func (a *API) Inspect(ctx context.Context, path string, content []byte) []inspection.ProviderOutcome {
	return a.engine.Inspect(ctx, path, content)
}

// InspectFile reads the document from disk and inspects it
func (a *API) InspectFile(ctx context.Context, path string) ([]inspection.ProviderOutcome, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.engine.Inspect(ctx, path, content), nil
}

// SetEnabled gates automatic inspection triggering and result publication
func (a *API) SetEnabled(enabled bool) {
	a.engine.SetEnabled(enabled)
}

// Enabled reports whether automatic inspection triggering is enabled
func (a *API) Enabled() bool {
	return a.engine.Enabled()
}

// Subscribe adds a listener for published inspection results
func (a *API) Subscribe(l inspection.ResultListener) {
	a.engine.Subscribe(l)
}
