package codewatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/kaptinlin/jsonschema"
)

// configSchema constrains the JSON configuration surface. TOML configs are
// decoded structurally by the toml package and skip schema validation.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "asyncTimeoutMs": {"type": "integer", "minimum": 1},
    "enabled": {"type": "boolean"},
    "languages": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "preferProviders": {"type": "array", "items": {"type": "string"}},
          "preferredOnly": {"type": "boolean"}
        }
      }
    },
    "extensions": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "providers": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "language", "command"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "language": {"type": "string", "minLength": 1},
          "command": {"type": "array", "items": {"type": "string"}, "minItems": 1}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func configJSONSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiledSchema, schemaErr = compiler.Compile([]byte(configSchema))
	})
	return compiledSchema, schemaErr
}

// ConfigLoader handles loading and merging configuration files
type ConfigLoader struct {
	projectDir string
	homeDir    string
}

// NewConfigLoader creates a configuration loader rooted at the current
// working directory.
func NewConfigLoader() (*ConfigLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	return &ConfigLoader{projectDir: projectDir, homeDir: homeDir}, nil
}

// GetConfigPaths returns the paths searched for configuration, in order of
// precedence (lowest to highest). The first existing TOML or JSON file at
// each level is used.
func (cl *ConfigLoader) GetConfigPaths() []string {
	return []string{
		filepath.Join(cl.homeDir, ".config", "codewatch", "config.json"),
		filepath.Join(cl.projectDir, ".codewatch.toml"),
		filepath.Join(cl.projectDir, ".codewatch.json"),
		filepath.Join(cl.projectDir, ".codewatch.local.json"),
	}
}

// LoadConfig loads and merges configuration from the default search paths.
// Missing files are skipped silently.
func (cl *ConfigLoader) LoadConfig() (*AppConfig, error) {
	return cl.LoadConfigWithPaths(cl.GetConfigPaths())
}

// LoadConfigWithPaths loads and merges configuration from specific paths
func (cl *ConfigLoader) LoadConfigWithPaths(paths []string) (*AppConfig, error) {
	config := NewAppConfig()

	for _, path := range paths {
		if err := cl.loadAndMergeConfig(config, path); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// ConfigExists checks whether any configuration file exists
func (cl *ConfigLoader) ConfigExists() bool {
	for _, path := range cl.GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func (cl *ConfigLoader) loadAndMergeConfig(config *AppConfig, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	fileConfig, err := ParseConfigFile(path)
	if err != nil {
		return err
	}

	config.Merge(fileConfig)
	return nil
}

// ParseConfigFile reads and validates a single configuration file. JSON
// files are checked against the config schema before unmarshalling; TOML
// files are decoded strictly.
func ParseConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".toml") {
		var fileConfig AppConfig
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		return &fileConfig, nil
	}

	if err := validateConfigJSON(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var fileConfig AppConfig
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fileConfig, nil
}

func validateConfigJSON(data []byte) error {
	schema, err := configJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	var instance map[string]interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("not a JSON object: %w", err)
	}

	result := schema.Validate(instance)
	if result.IsValid() {
		return nil
	}

	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", field, result.Errors[field])
	}
	return fmt.Errorf("schema validation failed: %s", b.String())
}
