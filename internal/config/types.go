package config

import "time"

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level gridguard configuration, corresponding to .gridguard.yml.
type Config struct {
	Port            int          `yaml:"port" koanf:"port"`
	ContentFile     string       `yaml:"content_file" koanf:"content_file"`
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	AllowAllOrigins bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	WatchContent    bool         `yaml:"watch_content" koanf:"watch_content"`
	Log             LogConfig    `yaml:"log" koanf:"log"`
	Reveal          RevealConfig `yaml:"reveal" koanf:"reveal"`
	Signup          SignupConfig `yaml:"signup" koanf:"signup"`
	CacheRules      []CacheRule  `yaml:"cache_rules" koanf:"cache_rules"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// RevealConfig tunes the scroll reveal trigger.
type RevealConfig struct {
	Threshold    float64 `yaml:"threshold" koanf:"threshold"`
	BottomMargin float64 `yaml:"bottom_margin" koanf:"bottom_margin"`
}

// SignupConfig holds the simulated submission delays.
type SignupConfig struct {
	SubmitDelay  time.Duration `yaml:"submit_delay" koanf:"submit_delay"`
	DismissAfter time.Duration `yaml:"dismiss_after" koanf:"dismiss_after"`
}

// CacheRule sets Cache-Control for static paths matching a doublestar glob.
type CacheRule struct {
	Pattern      string `yaml:"pattern" koanf:"pattern"`
	CacheControl string `yaml:"cache_control" koanf:"cache_control"`
}
