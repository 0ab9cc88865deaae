package codewatch

import (
	"time"
)

// AppConfig is the complete configuration surface the engine consumes.
// All fields are optional; absent fields keep their defaults when merged.
type AppConfig struct {
	// AsyncTimeoutMs is the per-provider budget for asynchronous scans
	AsyncTimeoutMs *int64 `json:"asyncTimeoutMs,omitempty" toml:"asyncTimeoutMs"`

	// Enabled gates automatic inspection triggering on editor events
	Enabled *bool `json:"enabled,omitempty" toml:"enabled"`

	// Languages holds per-language preference overrides keyed by language id
	Languages map[string]LanguageConfig `json:"languages,omitempty" toml:"languages"`

	// Extensions overrides the extension-to-language table (".lit": "literate")
	Extensions map[string]string `json:"extensions,omitempty" toml:"extensions"`

	// Providers declares external command providers to register
	Providers []CommandProviderConfig `json:"providers,omitempty" toml:"providers"`
}

// LanguageConfig reprioritizes provider selection for one language id
type LanguageConfig struct {
	PreferProviders []string `json:"preferProviders,omitempty" toml:"preferProviders"`
	PreferredOnly   *bool    `json:"preferredOnly,omitempty" toml:"preferredOnly"`
}

// CommandProviderConfig declares an external analyzer command. The language
// may be "*" to register a universal provider.
type CommandProviderConfig struct {
	Name     string   `json:"name" toml:"name"`
	Language string   `json:"language" toml:"language"`
	Command  []string `json:"command" toml:"command"`
}

// NewAppConfig creates an empty configuration
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Languages: make(map[string]LanguageConfig),
	}
}

// AsyncTimeout returns the configured timeout as a duration, or zero when
// unset so callers fall back to the dispatcher default.
func (c *AppConfig) AsyncTimeout() time.Duration {
	if c.AsyncTimeoutMs == nil {
		return 0
	}
	return time.Duration(*c.AsyncTimeoutMs) * time.Millisecond
}

// Merge combines two configs, with other taking precedence
func (c *AppConfig) Merge(other *AppConfig) {
	if other == nil {
		return
	}

	if other.AsyncTimeoutMs != nil {
		c.AsyncTimeoutMs = other.AsyncTimeoutMs
	}
	if other.Enabled != nil {
		c.Enabled = other.Enabled
	}

	if c.Languages == nil {
		c.Languages = make(map[string]LanguageConfig)
	}
	for lang, langConfig := range other.Languages {
		existing, exists := c.Languages[lang]
		if !exists {
			c.Languages[lang] = langConfig
			continue
		}
		if langConfig.PreferProviders != nil {
			existing.PreferProviders = langConfig.PreferProviders
		}
		if langConfig.PreferredOnly != nil {
			existing.PreferredOnly = langConfig.PreferredOnly
		}
		c.Languages[lang] = existing
	}

	if other.Extensions != nil {
		if c.Extensions == nil {
			c.Extensions = make(map[string]string)
		}
		for ext, lang := range other.Extensions {
			c.Extensions[ext] = lang
		}
	}

	// Later provider declarations append; registration is additive
	c.Providers = append(c.Providers, other.Providers...)
}
