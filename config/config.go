// Package config loads command line settings from flags, TABLEAU_*
// environment variables and an optional YAML file, in that order of
// precedence.
package config

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"q.log/tableau/logging"
	"q.log/tableau/simplex"
)

const (
	envPrefix = "TABLEAU"

	DefaultMaxIterations = 1000
	DefaultLogLevel      = "info"
)

type Config struct {
	// Input is the problem file, empty for the built-in problem.
	Input string

	// Basis is the initial basis; nil means ask on the console.
	Basis []int

	Epsilon       float64
	MaxIterations int

	// AssumeYes skips the confirmation of the initial basis.
	AssumeYes bool

	LogLevel slog.Level
	NoColor  bool
}

// NewFlagSet declares the command line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "YAML file with default settings")
	fs.Float64("epsilon", simplex.DefaultTolerance, "tolerance for sign tests")
	fs.Int("max-iterations", DefaultMaxIterations, "pivot limit, 0 for none")
	fs.IntSlice("basis", nil, "initial basis column indices, e.g. 2,3")
	fs.BoolP("yes", "y", false, "accept the initial basis without asking")
	fs.String("log-level", DefaultLogLevel, "debug, info, warn or error")
	fs.Bool("no-color", false, "disable colored logs")
	return fs
}

// Load parses args and resolves every setting.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("tableau")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, errors.Errorf("config: want at most one problem file, got %d", fs.NArg())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	basis, err := intSlice(v.Get("basis"))
	if err != nil {
		return nil, errors.Wrap(err, "config: basis")
	}
	level, err := logging.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}

	cfg := &Config{
		Input:         fs.Arg(0),
		Basis:         basis,
		Epsilon:       v.GetFloat64("epsilon"),
		MaxIterations: v.GetInt("max-iterations"),
		AssumeYes:     v.GetBool("yes"),
		LogLevel:      level,
		NoColor:       v.GetBool("no-color"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	if c.Epsilon <= 0 || c.Epsilon >= 1 {
		return errors.Errorf("config: epsilon must be in (0, 1), got %g", c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return errors.Errorf("config: max-iterations must be >= 0, got %d", c.MaxIterations)
	}
	return nil
}

// intSlice accepts the forms a basis arrives in: a flag value, a YAML
// list or a comma or space separated environment string.
func intSlice(v any) ([]int, error) {
	var out []int
	if s, ok := v.(string); ok {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			i, err := cast.ToIntE(f)
			if err != nil {
				return nil, err
			}
			out = append(out, i)
		}
	} else if v != nil {
		var err error
		if out, err = cast.ToIntSliceE(v); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
