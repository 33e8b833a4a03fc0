// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("evenorzero", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 0 && n%2 == 0
	})
}

// New returns a viper instance with defaults and environment binding but
// no file.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("ATOMLATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (TOML) on top of defaults and environment; an empty
// path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// ReadFile merges the TOML file at path into v; an empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "config: read %s", path)
	}
	return nil
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the defaults without consulting the environment. It
// panics if the built-in defaults fail to decode or validate.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		panic(errors.Wrap(err, "config: defaults"))
	}
	return cfg
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WithHint(errors.Mark(errors.Wrap(err, "config"), ErrInvalid),
			"run `atomlath config show` to see the effective values")
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(err, "config: encode")
	}
	return nil
}
