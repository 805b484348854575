package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dyluth/braille/pkg/braille"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "braille.yml"

// Direction values accepted by translate.direction
const (
	DirectionAuto    = "auto"
	DirectionBraille = "braille"
	DirectionEnglish = "english"
)

// Output values accepted by translate.output
const (
	OutputDefault = "default"
	OutputJSONL   = "jsonl"
)

// BrailleConfig represents the top-level braille.yml configuration
type BrailleConfig struct {
	Version   string           `yaml:"version"`
	Alphabet  *AlphabetConfig  `yaml:"alphabet,omitempty"`
	Translate *TranslateConfig `yaml:"translate,omitempty"`
}

// AlphabetConfig selects the characters cells are written with
type AlphabetConfig struct {
	Raised string `yaml:"raised"` // Single character for a raised dot (default "O")
	Flat   string `yaml:"flat"`   // Single character for a flat dot (default ".")
}

// TranslateConfig holds defaults for the translate command
type TranslateConfig struct {
	Direction string `yaml:"direction,omitempty"` // auto, braille or english
	Output    string `yaml:"output,omitempty"`    // default or jsonl
}

// Default returns the configuration used when no braille.yml exists.
func Default() *BrailleConfig {
	cfg := &BrailleConfig{Version: "1.0"}
	// Validate only fills in defaults here and cannot fail.
	_ = cfg.Validate()
	return cfg
}

// Validate performs strict validation on the configuration and applies defaults
func (c *BrailleConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Alphabet == nil {
		c.Alphabet = &AlphabetConfig{}
	}
	if err := c.Alphabet.Validate(); err != nil {
		return err
	}

	if c.Translate == nil {
		c.Translate = &TranslateConfig{}
	}
	if err := c.Translate.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the alphabet and fills in the default characters
func (a *AlphabetConfig) Validate() error {
	if a.Raised == "" {
		a.Raised = string(braille.DefaultAlphabet.Raised)
	}
	if a.Flat == "" {
		a.Flat = string(braille.DefaultAlphabet.Flat)
	}

	if len(a.Raised) != 1 {
		return fmt.Errorf("alphabet.raised must be a single character, got %q", a.Raised)
	}
	if len(a.Flat) != 1 {
		return fmt.Errorf("alphabet.flat must be a single character, got %q", a.Flat)
	}

	if err := a.Braille().Validate(); err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	return nil
}

// Braille converts the validated config into an engine alphabet
func (a *AlphabetConfig) Braille() braille.Alphabet {
	var alphabet braille.Alphabet
	if len(a.Raised) > 0 {
		alphabet.Raised = a.Raised[0]
	}
	if len(a.Flat) > 0 {
		alphabet.Flat = a.Flat[0]
	}
	return alphabet
}

// Validate checks the translate section and fills in defaults
func (t *TranslateConfig) Validate() error {
	if t.Direction == "" {
		t.Direction = DirectionAuto
	}
	if t.Output == "" {
		t.Output = OutputDefault
	}

	switch t.Direction {
	case DirectionAuto, DirectionBraille, DirectionEnglish:
	default:
		return fmt.Errorf("invalid translate.direction: %s (must be 'auto', 'braille', or 'english')", t.Direction)
	}

	switch t.Output {
	case OutputDefault, OutputJSONL:
	default:
		return fmt.Errorf("invalid translate.output: %s (must be 'default' or 'jsonl')", t.Output)
	}

	return nil
}

// Load reads and validates braille.yml from the specified path
func Load(path string) (*BrailleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BrailleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like Load but returns the default configuration
// when the file does not exist.
func LoadOrDefault(path string) (*BrailleConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
