package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/gridguard/landing/internal/logger"
)

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a nested key: GRIDGUARD_SIGNUP__SUBMIT_DELAY -> signup.submit_delay.
const EnvPrefix = "GRIDGUARD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GRIDGUARD_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: GRIDGUARD_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
			// A cache_rules list in the file replaces the defaults.
			ZeroFields:       true,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			Result:           cfg,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != "" && c.Log.Format != LogText && c.Log.Format != LogJSON {
		return fmt.Errorf("invalid log.format %q: must be one of text, json", c.Log.Format)
	}

	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal.threshold must be between 0 and 1, got %v", c.Reveal.Threshold)
	}
	if c.Reveal.BottomMargin < 0 {
		return fmt.Errorf("reveal.bottom_margin must be non-negative")
	}

	if c.Signup.SubmitDelay <= 0 {
		return fmt.Errorf("signup.submit_delay must be positive")
	}
	if c.Signup.DismissAfter <= 0 {
		return fmt.Errorf("signup.dismiss_after must be positive")
	}

	for i, rule := range c.CacheRules {
		if !doublestar.ValidatePattern(rule.Pattern) {
			return fmt.Errorf("cache_rules[%d]: invalid pattern %q", i, rule.Pattern)
		}
		if rule.CacheControl == "" {
			return fmt.Errorf("cache_rules[%d]: cache_control is required", i)
		}
	}

	return nil
}
