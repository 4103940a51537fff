// Package config loads run profiles for the sprout CLI.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/preset"
	"github.com/aretw0/sprout/pkg/rules"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Profile is a saved set of run parameters. Zero or nil optional fields keep the preset defaults.
// Every key can also come from a SPROUT_-prefixed environment variable (see ApplyEnv).
type Profile struct {
	Preset string `yaml:"preset" json:"preset" mapstructure:"preset" env:"PRESET"`

	// Generations overrides the preset generation count when non-negative.
	Generations    int     `yaml:"generations" json:"generations" mapstructure:"generations" env:"GENERATIONS"`
	MaxGenerations int     `yaml:"max_generations" json:"max_generations" mapstructure:"max_generations" env:"MAX_GENERATIONS"`
	Seed           *uint64 `yaml:"seed,omitempty" json:"seed,omitempty" mapstructure:"seed" env:"SEED"`
	Probability    string  `yaml:"probability" json:"probability" mapstructure:"probability" env:"PROBABILITY"`

	Distance float64 `yaml:"distance,omitempty" json:"distance,omitempty" mapstructure:"distance" env:"DISTANCE"`
	// Angle and Declination are in degrees; nil keeps the preset turn, zero sets a zero turn.
	Angle       *float64 `yaml:"angle,omitempty" json:"angle,omitempty" mapstructure:"angle" env:"ANGLE"`
	Declination *float64 `yaml:"declination,omitempty" json:"declination,omitempty" mapstructure:"declination" env:"DECLINATION"`
	Jitter      *bool    `yaml:"jitter,omitempty" json:"jitter,omitempty" mapstructure:"jitter" env:"JITTER"`

	Format string `yaml:"format" json:"format" mapstructure:"format" env:"FORMAT"`
	Pretty bool   `yaml:"pretty" json:"pretty" mapstructure:"pretty" env:"PRETTY"`

	LogLevel  string `yaml:"log_level" json:"log_level" mapstructure:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" json:"log_format" mapstructure:"log_format" env:"LOG_FORMAT"`
}

// Output formats for draw.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// DefaultMaxGenerations bounds growth when a profile does not set its own guard.
const DefaultMaxGenerations = 12

// Default returns the profile used when no file is given.
func Default() Profile {
	return Profile{
		Preset:         "plant-2d",
		Generations:    -1,
		MaxGenerations: DefaultMaxGenerations,
		Probability:    string(rules.PolicyPermissive),
		Format:         FormatJSON,
		LogLevel:       "info",
		LogFormat:      string(logging.FormatText),
	}
}

// Load reads a profile file (YAML or JSON, chosen by extension) over the defaults.
func Load(path string) (Profile, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, filepath.Base(path), err)
		}
	}
	return p, p.Validate()
}

// ApplyOverrides decodes key=value pairs onto p. Keys use the file names (e.g. max_generations).
func ApplyOverrides(p *Profile, sets []string) error {
	if len(sets) == 0 {
		return nil
	}
	raw := make(map[string]any, len(sets))
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return fmt.Errorf("%w: override %q is not key=value", domain.ErrInvalidConfig, kv)
		}
		raw[k] = strings.TrimSpace(v)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           p,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return p.Validate()
}

// Validate reports every invalid field in a single ErrInvalidConfig error.
func (p Profile) Validate() error {
	var problems []string
	if p.Preset == "" {
		problems = append(problems, "preset is required")
	}
	if p.MaxGenerations <= 0 {
		problems = append(problems, "max_generations must be positive")
	}
	if p.Generations < -1 {
		problems = append(problems, "generations must be non-negative")
	}
	if p.Generations > p.MaxGenerations {
		problems = append(problems, fmt.Sprintf("generations %d exceeds max_generations %d", p.Generations, p.MaxGenerations))
	}
	if !rules.ProbabilityPolicy(p.Probability).Valid() {
		problems = append(problems, fmt.Sprintf("unknown probability policy %q", p.Probability))
	}
	if p.Distance < 0 || !finite(p.Distance) {
		problems = append(problems, "distance must be finite and non-negative")
	}
	if p.Angle != nil && !finite(*p.Angle) {
		problems = append(problems, "angle must be finite")
	}
	if p.Declination != nil && !finite(*p.Declination) {
		problems = append(problems, "declination must be finite")
	}
	if p.Format != FormatJSON && p.Format != FormatText {
		problems = append(problems, fmt.Sprintf("unknown format %q", p.Format))
	}
	if _, err := logging.ParseLevel(p.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ApplyTo returns a copy of pre with the profile's geometry overrides. Angles are in degrees.
func (p Profile) ApplyTo(pre preset.Preset) preset.Preset {
	if p.Distance > 0 {
		pre.Distance = p.Distance
	}
	if p.Angle != nil {
		rad := *p.Angle * math.Pi / 180
		pre.Turn2D.Rotation = rad
		pre.Turn3D.Azimuth = rad
	}
	if p.Declination != nil {
		pre.Turn3D.Declination = *p.Declination * math.Pi / 180
	}
	if p.Jitter != nil {
		pre.Jitter = *p.Jitter
	}
	return pre
}

// GenerationCount resolves the number of generations to grow for pre.
func (p Profile) GenerationCount(pre preset.Preset) int {
	n := pre.Generations
	if p.Generations >= 0 {
		n = p.Generations
	}
	return min(n, p.MaxGenerations)
}
