// Package config resolves the solver and CLI settings from defaults, an
// optional gosdm.toml file, GOSDM_ environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "gosdm.toml"

const envPrefix = "GOSDM_"

// Config holds all configuration for the application
type Config struct {
	Stations  int       `koanf:"stations" validate:"gte=2"`
	Workers   int       `koanf:"workers" validate:"gte=1"`
	Tolerance Tolerance `koanf:"tolerance"`
	Log       Log       `koanf:"log"`
}

// Tolerance groups the numerical limits handed to the solvers.
type Tolerance struct {
	Condition   float64 `koanf:"condition" validate:"gt=1"`
	Equilibrium float64 `koanf:"equilibrium" validate:"gt=0"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `koanf:"format" validate:"oneof=text json compact"`
}

// flagKeys maps persistent flag names onto configuration keys. Flags not
// listed here are left to the commands that own them.
var flagKeys = map[string]string{
	"stations":        "stations",
	"workers":         "workers",
	"max-condition":   "tolerance.condition",
	"equilibrium-tol": "tolerance.equilibrium",
	"log-level":       "log.level",
	"log-format":      "log.format",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"stations": 51,
		"workers":  4,
		"tolerance": map[string]interface{}{
			"condition":   1e12,
			"equilibrium": 1e-6,
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
//
// An empty path falls back to DefaultFile, which may be absent. A path given
// explicitly must exist.
func Load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// 3. Environment Variables
	// Prefix: GOSDM_ (e.g., GOSDM_TOLERANCE_EQUILIBRIUM=1e-4)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.ProviderWithValue(f, ".", k, func(name, value string) (string, interface{}) {
			return flagKeys[name], value
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("invalid config: %s fails %q (got %v)", strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config.")), fe.Tag(), fe.Value())
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
