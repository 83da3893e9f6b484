package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the behavior when nothing but the two required
// environment values is provided.
const (
	DefaultOutputDir = "transcripts"
	DefaultDelay     = time.Second
)

// defaultLanguages is the transcript language preference order. The last
// resort (any available language) is always appended by the fetcher and is
// not part of this list.
var defaultLanguages = []string{"hi", "hi-IN"}

// Config holds everything a run needs. It is built once at process entry
// and passed into each component; there are no ambient globals.
type Config struct {
	APIKey          string
	PlaylistID      string
	OutputDir       string
	Languages       []string
	Delay           time.Duration
	CredentialsPath string
}

// fileConfig is the YAML shape of the optional config file. Delay is kept
// as a string so users can write "1s" or "500ms".
type fileConfig struct {
	PlaylistID  string   `yaml:"playlistId"`
	OutputDir   string   `yaml:"outputDir"`
	Languages   []string `yaml:"languages"`
	Delay       string   `yaml:"delay"`
	Credentials string   `yaml:"credentials"`
}

// Load builds a Config from the environment, then overlays the optional
// YAML config file at path (empty path skips the overlay).
func Load(path string) (*Config, error) {
	cfg := &Config{
		APIKey:          os.Getenv("YOUTUBE_API_KEY"),
		PlaylistID:      os.Getenv("PLAYLIST_ID"),
		OutputDir:       os.Getenv("TRANSCRIPTS_DIR"),
		CredentialsPath: os.Getenv("YOUTUBE_CREDENTIALS"),
		Delay:           DefaultDelay,
	}

	if langs := os.Getenv("TRANSCRIPT_LANGUAGES"); langs != "" {
		for _, lang := range strings.Split(langs, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				cfg.Languages = append(cfg.Languages, lang)
			}
		}
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = append([]string(nil), defaultLanguages...)
	}

	return cfg, nil
}

// applyFile overlays values from a YAML config file onto cfg.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.PlaylistID != "" {
		c.PlaylistID = fc.PlaylistID
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if len(fc.Languages) > 0 {
		c.Languages = fc.Languages
	}
	if fc.Credentials != "" {
		c.CredentialsPath = fc.Credentials
	}
	if fc.Delay != "" {
		delay, err := time.ParseDuration(fc.Delay)
		if err != nil {
			return fmt.Errorf("invalid delay in config file: %w", err)
		}
		c.Delay = delay
	}

	return nil
}

// Validate performs comprehensive validation of the run configuration
func (c *Config) Validate() error {
	if c.PlaylistID == "" {
		return fmt.Errorf("playlist ID is required (set PLAYLIST_ID or use --playlist)")
	}
	if c.APIKey == "" && c.CredentialsPath == "" {
		return fmt.Errorf("either YOUTUBE_API_KEY or OAuth credentials are required")
	}
	if c.CredentialsPath != "" {
		if _, err := os.Stat(c.CredentialsPath); err != nil {
			return fmt.Errorf("credentials file does not exist: %s", c.CredentialsPath)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	return nil
}
