package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to gridguard! Let's configure the landing site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (YAML, leave blank for built-in copy)",
		Default: "",
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := os.Stat(s); err != nil {
				return fmt.Errorf("cannot read %s", s)
			}
			return nil
		},
	}
	cfg.ContentFile, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	// 3. Output directory for static export.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static export",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"text (human readable)",
			"json (for log collectors)",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogText, LogJSON}[formatIdx]

	// 5. Extra long-lived asset patterns.
	cachePrompt := promptui.Prompt{
		Label:   "Extra long-cache asset globs (comma-separated, leave blank for defaults)",
		Default: "",
	}
	cacheStr, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache patterns: %w", err)
	}
	for _, pattern := range splitAndTrim(cacheStr) {
		cfg.CacheRules = append(cfg.CacheRules, CacheRule{Pattern: pattern, CacheControl: "public, max-age=86400"})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
