// Package config loads the drawauth TOML configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/mcuadros/go-defaults"
)

// Config is the deployment configuration of the drawing authenticator.
type Config struct {
	// Threshold is the largest Hamming distance, out of 64, that is still
	// accepted. 25 requires roughly a 60% match, 35 roughly 45%.
	Threshold int `toml:"threshold" default:"25" validate:"gte=0,lte=64"`

	Logging      LoggingConfig      `toml:"logging"`
	Transparency TransparencyConfig `toml:"transparency"`
}

// LoggingConfig selects the slog handler and its destination.
type LoggingConfig struct {
	Level  string `toml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `toml:"format" default:"text" validate:"oneof=text json"`

	// File is a strftime pattern for rotating log files, e.g.
	// "/var/log/drawauth.%Y%m%d". Empty logs to stderr.
	File         string        `toml:"file"`
	MaxAge       time.Duration `toml:"max_age" default:"168h" validate:"gte=0"`
	RotationTime time.Duration `toml:"rotation_time" default:"24h" validate:"gt=0"`
}

// TransparencyConfig controls dumping of pipeline artefacts.
type TransparencyConfig struct {
	Dir string `toml:"dir"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	cfg := new(Config)
	defaults.SetDefaults(cfg)
	return cfg
}

// Load reads a TOML file over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s: failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return err
}
