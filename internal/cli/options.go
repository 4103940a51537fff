package cli

import (
	"io"
	"os"

	"github.com/aretw0/sprout/internal/config"
)

// Options carries the global flags shared by every command.
type Options struct {
	ConfigPath string
	Sets       []string
	Debug      bool
	// Metrics dumps the Prometheus text exposition to Err after the run.
	Metrics bool

	Out io.Writer
	Err io.Writer
}

func (o Options) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) stderr() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}
	return o.Err
}

// LoadProfile resolves the run profile: defaults, then the config file, then SPROUT_* variables,
// then --set overrides.
// A non-empty presetName (positional argument) wins over both.
func LoadProfile(opts Options, presetName string) (config.Profile, error) {
	profile := config.Default()
	if opts.ConfigPath != "" {
		p, err := config.Load(opts.ConfigPath)
		if err != nil {
			return profile, err
		}
		profile = p
	}
	if err := config.ApplyEnv(&profile); err != nil {
		return profile, err
	}
	if err := config.ApplyOverrides(&profile, opts.Sets); err != nil {
		return profile, err
	}
	if presetName != "" {
		profile.Preset = presetName
	}
	if opts.Debug {
		profile.LogLevel = "debug"
	}
	return profile, nil
}
