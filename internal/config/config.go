// Package config loads command settings from an optional file and
// LEEROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the command settings. Penalties left unset fall back to the
// values in the input file header.
type Config struct {
	Frontier    string   `mapstructure:"frontier" validate:"oneof=priority fifo"`
	Workers     int      `mapstructure:"workers" validate:"min=1,max=1024"`
	LogLevel    string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Output      string   `mapstructure:"output" validate:"required"`
	BendPenalty *float64 `mapstructure:"bend_penalty" validate:"omitempty,gte=0"`
	ViaPenalty  *float64 `mapstructure:"via_penalty" validate:"omitempty,gte=0"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

const envPrefix = "LEEROUTE"

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("frontier", "priority")
	v.SetDefault("workers", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "routing_output.txt")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"bend_penalty", "via_penalty"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Frontier = strings.ToLower(cfg.Frontier)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg, nil
}
