package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every profile variable, e.g. SPROUT_SEED.
const EnvPrefix = "SPROUT_"

// ApplyEnv overlays the profile with any SPROUT_* variables that are set.
func ApplyEnv(p *Profile) error {
	if err := env.ParseWithOptions(p, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return p.Validate()
}
