package config

import (
	"github.com/gridguard/landing/internal/reveal"
	"github.com/gridguard/landing/internal/signup"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".gridguard.yml"

// DefaultCacheRules keep versioned assets long-lived and everything else
// revalidated.
var DefaultCacheRules = []CacheRule{
	{Pattern: "**/*.{css,js}", CacheControl: "public, max-age=3600"},
	{Pattern: "**/*.{svg,png,jpg,jpeg,webp,ico}", CacheControl: "public, max-age=86400"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:      8080,
		OutputDir: "dist",
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
		Reveal: RevealConfig{
			Threshold:    reveal.DefaultThreshold,
			BottomMargin: reveal.DefaultBottomMargin,
		},
		Signup: SignupConfig{
			SubmitDelay:  signup.DefaultSubmitDelay,
			DismissAfter: signup.DefaultDismissAfter,
		},
		CacheRules: append([]CacheRule(nil), DefaultCacheRules...),
	}
}

// RevealOptions converts the reveal settings for the observer package.
func (c *Config) RevealOptions() reveal.Options {
	return reveal.Options{Threshold: c.Reveal.Threshold, BottomMargin: c.Reveal.BottomMargin}
}

// SignupTimings converts the form delays for the signup package.
func (c *Config) SignupTimings() signup.Config {
	return signup.Config{SubmitDelay: c.Signup.SubmitDelay, DismissAfter: c.Signup.DismissAfter}
}
