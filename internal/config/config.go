// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed     = "TRAILGUIDE_SEED"
	EnvFeatured = "TRAILGUIDE_FEATURED"
	EnvLogLevel = "TRAILGUIDE_LOG_LEVEL"
	EnvVerbose  = "TRAILGUIDE_VERBOSE"
)

// DefaultLogLevel is used when neither the file nor the environment sets one.
const DefaultLogLevel = "info"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	Seed     string   `json:"seed,omitempty"`                                                       // Path to a seed YAML file replacing the embedded dataset
	Featured []string `json:"featured,omitempty" validate:"omitempty,dive,required"`                // Allow-list overriding the seed's featured list
	LogLevel string   `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // zap level name
	Verbose  bool     `json:"verbose,omitempty"`                                                    // Debug logging regardless of LogLevel
	JSON     bool     `json:"json,omitempty"`                                                       // Print command output as JSON

	// featuredSet distinguishes an explicitly empty allow-list from an unset one.
	featuredSet bool
}

var validate = validator.New()

// UnmarshalJSON records whether the featured key was present.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	var raw struct {
		plain
		Featured *[]string `json:"featured"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Config(raw.plain)
	if raw.Featured != nil {
		c.Featured = *raw.Featured
		c.featuredSet = true
	}
	return nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// SetFeatured replaces the allow-list, marking it as explicitly set even when empty.
func (c *Config) SetFeatured(allowList []string) {
	c.Featured = allowList
	c.featuredSet = true
}

// HasFeatured reports whether an allow-list was set, as opposed to left
// for the seed document to supply.
func (c *Config) HasFeatured() bool {
	return c.featuredSet || len(c.Featured) > 0
}

// ApplyEnv overlays TRAILGUIDE_* environment variables onto the config.
// lookupEnv is usually os.LookupEnv. A TRAILGUIDE_FEATURED that is set
// but empty clears the allow-list.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvSeed); ok && v != "" {
		c.Seed = v
	}
	if v, ok := lookupEnv(EnvFeatured); ok {
		c.SetFeatured(splitList(v))
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookupEnv(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a boolean: %w", EnvVerbose, err)
		}
		c.Verbose = b
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check", jsonName(fe.StructField()), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Seed != "" {
		if _, err := os.Stat(c.Seed); os.IsNotExist(err) {
			return fmt.Errorf("config error: seed file not found: %s", c.Seed)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Seed == "" {
		result.Seed = defaults.Seed
	}
	if !result.HasFeatured() && defaults.HasFeatured() {
		result.Featured = append([]string(nil), defaults.Featured...)
		result.featuredSet = true
	}
	if result.LogLevel == "" {
		if defaults.LogLevel != "" {
			result.LogLevel = defaults.LogLevel
		} else {
			result.LogLevel = DefaultLogLevel
		}
	}

	// Bool fields: cannot distinguish unset from false, so either side
	// turning them on wins.
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSON = result.JSON || defaults.JSON

	return result
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "LogLevel":
		return "log_level"
	default:
		return strings.ToLower(field)
	}
}
