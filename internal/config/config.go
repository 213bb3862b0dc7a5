// SPDX-License-Identifier: MIT

// Package config loads CLI settings from an optional file, TMETHODS_*
// environment variables and bound flags, in viper's precedence order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/MEGORD/t-methods-calculator/internal/logging"
	"github.com/MEGORD/t-methods-calculator/modi"
)

// EnvPrefix prefixes every environment override, e.g. TMETHODS_SOLVER_METHOD.
const EnvPrefix = "TMETHODS"

// Config is the top-level configuration.
type Config struct {
	Solver  SolverConfig   `mapstructure:"solver"`
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// SolverConfig mirrors modi.Options.
type SolverConfig struct {
	Method        string        `mapstructure:"method"         validate:"oneof=stepping-stone residual-fill"`
	MaxIterations int           `mapstructure:"max_iterations" validate:"gt=0"`
	TimeLimit     time.Duration `mapstructure:"time_limit"     validate:"gte=0"`
}

// MetricsConfig controls the Prometheus textfile export. An empty File disables it.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// SetDefaults registers every key so environment overrides apply to all of them.
func SetDefaults(v *viper.Viper) {
	lc := logging.DefaultConfig()

	v.SetDefault("solver.method", modi.SteppingStone.String())
	v.SetDefault("solver.max_iterations", modi.DefaultMaxIterations)
	v.SetDefault("solver.time_limit", time.Duration(0))
	v.SetDefault("log.level", lc.Level)
	v.SetDefault("log.format", lc.Format)
	v.SetDefault("log.file", lc.File)
	v.SetDefault("log.max_size", lc.MaxSize)
	v.SetDefault("log.max_backups", lc.MaxBackups)
	v.SetDefault("log.max_age", lc.MaxAge)
	v.SetDefault("log.compress", lc.Compress)
	v.SetDefault("metrics.file", "")
}

// Load reads path (skipped when empty) into v, applies environment overrides
// and validates the result. Flags must be bound to v before calling Load.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	if err := validator.New().Struct(conf); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return conf, nil
}

// SolveOptions converts the solver section into modi options. The parsed
// method is returned alongside for callers that label results with it.
func (c *Config) SolveOptions() (modi.Method, []modi.Option, error) {
	m, err := modi.ParseMethod(c.Solver.Method)
	if err != nil {
		return 0, nil, err
	}

	return m, []modi.Option{
		modi.WithMethod(m),
		modi.WithMaxIterations(c.Solver.MaxIterations),
		modi.WithTimeLimit(c.Solver.TimeLimit),
	}, nil
}
