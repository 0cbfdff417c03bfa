// Package config provides loading and parsing of matcher.yaml
// calibration files. A calibration file tunes the confidence
// thresholds, signal weights, name-signal scores, extra
// transliteration families, and guardrail rules without code changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veridoc/entitymatch/names"
	"github.com/veridoc/entitymatch/policy"
)

// Config represents a matcher.yaml calibration file. Every section is
// optional; omitted values fall back to the compiled-in defaults.
type Config struct {
	// Thresholds are the inclusive confidence cut-offs for action
	// selection.
	Thresholds *policy.Thresholds `yaml:"thresholds,omitempty"`

	// Weights control the contribution of each signal when no single
	// signal dominates.
	Weights *Weights `yaml:"weights,omitempty"`

	// NameScores tune the confidences assigned to dictionary-backed
	// name relations.
	NameScores *names.Scores `yaml:"name_scores,omitempty"`

	// Families are extra transliteration families merged over the
	// built-in dictionary: canonical root -> variant spellings.
	Families map[string][]string `yaml:"families,omitempty"`

	// Rules are guardrail rules applied after base classification.
	Rules []policy.Rule `yaml:"rules,omitempty"`
}

// Weights control the weighted combination of the name and ID signals.
type Weights struct {
	Name float64 `yaml:"name"`
	ID   float64 `yaml:"id"`
}

// DefaultWeights returns the calibrated signal weights.
func DefaultWeights() Weights {
	return Weights{Name: 0.5, ID: 0.5}
}

// Load reads and parses a matcher.yaml file from the given path. If
// the path is a directory, it looks for matcher.yaml or matcher.yml in
// that directory. The returned config has been validated.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "matcher.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "matcher.yml")
			if _, err := os.Stat(ymlPath); err != nil {
				return nil, fmt.Errorf("no matcher.yaml or matcher.yml found in %s", path)
			}
			configPath = ymlPath
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates raw YAML calibration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every configured value is usable: confidences
// and weights within range, thresholds correctly ordered, and rule
// actions known. Rule conditions are compiled later, when the rule set
// is built.
func (c *Config) Validate() error {
	if t := c.Thresholds; t != nil {
		for _, v := range []struct {
			name  string
			value float64
		}{
			{"auto_group", t.AutoGroup},
			{"suggest_group", t.SuggestGroup},
			{"review", t.Review},
		} {
			if v.value < 0 || v.value > 1 {
				return fmt.Errorf("threshold %s must be in [0, 1], got %v", v.name, v.value)
			}
		}
		if t.AutoGroup < t.SuggestGroup || t.SuggestGroup < t.Review {
			return fmt.Errorf("thresholds must satisfy auto_group >= suggest_group >= review, got %v >= %v >= %v",
				t.AutoGroup, t.SuggestGroup, t.Review)
		}
	}

	if w := c.Weights; w != nil {
		if w.Name < 0 || w.ID < 0 {
			return fmt.Errorf("signal weights must be non-negative, got name=%v id=%v", w.Name, w.ID)
		}
		if w.Name == 0 && w.ID == 0 {
			return fmt.Errorf("at least one signal weight must be positive")
		}
	}

	if s := c.NameScores; s != nil {
		if s.Canonical < 0 || s.Canonical > 1 || s.Variant < 0 || s.Variant > 1 {
			return fmt.Errorf("name scores must be in [0, 1], got canonical=%v variant=%v", s.Canonical, s.Variant)
		}
	}

	for root, variants := range c.Families {
		if names.Normalize(root) == "" {
			return fmt.Errorf("family root %q normalizes to empty", root)
		}
		if len(variants) == 0 {
			return fmt.Errorf("family %q has no variants", root)
		}
	}

	for _, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("every rule needs a name")
		}
		if r.When == "" {
			return fmt.Errorf("rule %q has no condition", r.Name)
		}
		if !r.Action.IsValid() {
			return fmt.Errorf("rule %q: invalid action: %s", r.Name, r.Action)
		}
	}

	return nil
}
