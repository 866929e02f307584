// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvFile names the environment variable holding the configuration path.
const EnvFile = "X509_CERT_STORE_CONFIG"

const (
	// DefaultAliasPrefix prefixes aliases of imported chains.
	DefaultAliasPrefix = "cert"
	// DefaultOutput is the rendering used by the command line tool.
	DefaultOutput = "table"
	// DefaultTimeout bounds file reads, in seconds.
	DefaultTimeout = 30
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidConfig is returned when a document does not satisfy the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings for loading, storing and rendering certificates.
type Config struct {
	// Defaults: Default settings for certificate operations
	Defaults struct {
		// Format: Encoding forced on input files (PEM or DER); empty detects it
		Format string `json:"format" yaml:"format"`
		// AliasPrefix: Prefix for aliases assigned by chain imports
		AliasPrefix string `json:"aliasPrefix" yaml:"aliasPrefix"`
		// Output: Rendering of listings (table, json or pem)
		Output string `json:"output" yaml:"output"`
		// Timeout: Default timeout in seconds for file operations
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"defaults" yaml:"defaults"`

	// Log: Logger selection
	Log struct {
		// JSON: Emit one JSON object per log line
		JSON bool `json:"json" yaml:"json"`
		// Silent: Discard informational log lines
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.AliasPrefix = DefaultAliasPrefix
	cfg.Defaults.Output = DefaultOutput
	cfg.Defaults.Timeout = DefaultTimeout
	return cfg
}

// TimeoutDuration returns the configured timeout as a [time.Duration].
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Defaults.Timeout) * time.Second
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// Load reads the configuration at path, or at $X509_CERT_STORE_CONFIG when
// path is empty, on top of [Default].
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the file cannot be read, parsed or validated
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_CERT_STORE_CONFIG is checked if path is empty
//  3. File values override defaults
//  4. Zero values left by the file fall back to defaults
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvFile)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := parse(data, detectFormat(path), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse validates data against the schema and decodes it into cfg.
func parse(data []byte, f format, cfg *Config) error {
	doc, err := unmarshal(data, f)
	if err != nil {
		return err
	}
	if err := validate(doc); err != nil {
		return err
	}

	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	cfg.fillDefaults()
	return nil
}

// ParseYAML validates a YAML document and decodes it into cfg.
func ParseYAML(data []byte, cfg *Config) error { return parse(data, formatYAML, cfg) }

// ParseJSON validates a JSON document and decodes it into cfg.
func ParseJSON(data []byte, cfg *Config) error { return parse(data, formatJSON, cfg) }

// unmarshal decodes data into a generic document for schema validation.
func unmarshal(data []byte, f format) (any, error) {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	// An empty YAML file decodes to nil.
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func validate(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (c *Config) fillDefaults() {
	c.Defaults.Format = strings.ToUpper(c.Defaults.Format)
	if c.Defaults.AliasPrefix == "" {
		c.Defaults.AliasPrefix = DefaultAliasPrefix
	}
	if c.Defaults.Output == "" {
		c.Defaults.Output = DefaultOutput
	}
	if c.Defaults.Timeout <= 0 {
		c.Defaults.Timeout = DefaultTimeout
	}
}
