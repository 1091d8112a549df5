// Package config loads the ranking updater configuration from a YAML
// file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	BaseURL         string        `yaml:"base_url"          env:"JPA_BASE_URL"          env-default:"http://www.poolplayers.jp"`
	StandingsPath   string        `yaml:"standings_path"    env:"JPA_STANDINGS_PATH"    env-default:"/standings/"`
	DivisionLabel   string        `yaml:"division_label"    env:"JPA_DIVISION_LABEL"    env-default:"028 COLLEGE (TUE)"`
	DivisionCode    string        `yaml:"division_code"     env:"JPA_DIVISION_CODE"     env-default:"028"`
	RatingReportURL string        `yaml:"rating_report_url" env:"JPA_RATING_REPORT_URL"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"      env:"JPA_HTTP_TIMEOUT"      env-default:"30s"`
	RatingTimeout   time.Duration `yaml:"rating_timeout"    env:"JPA_RATING_TIMEOUT"    env-default:"20s"`
	SnapshotPath    string        `yaml:"snapshot_path"     env:"JPA_SNAPSHOT_PATH"     env-default:"ranking_data.json"`
	IndividualDedup string        `yaml:"individual_dedup"  env:"JPA_INDIVIDUAL_DEDUP"  env-default:"keep-all"`

	// TeamNames is the lowest-priority name tier, keyed by team ID.
	// It is season-specific, so it lives in the YAML file.
	TeamNames map[string]string `yaml:"team_names"`
}

// StandingsURL is the full URL of the division standings page.
func (c *Config) StandingsURL() string {
	return strings.TrimSuffix(c.BaseURL, "/") + c.StandingsPath
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The YAML path comes from the
// CONFIG_PATH env (fallback "./config.yaml"); when neither exists,
// configuration is built from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}
	return loadFrom(path, explicitPath)
}

// LoadFile reads configuration from an explicit YAML file path.
func LoadFile(path string) (*Config, error) {
	return loadFrom(path, true)
}

func loadFrom(path string, mustExist bool) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if mustExist {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the fields the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.DivisionLabel == "" {
		return fmt.Errorf("division_label is required")
	}
	if c.DivisionCode == "" {
		return fmt.Errorf("division_code is required")
	}
	switch c.IndividualDedup {
	case "keep-all", "first-wins":
	default:
		return fmt.Errorf("individual_dedup must be \"keep-all\" or \"first-wins\", got %q", c.IndividualDedup)
	}
	return nil
}
