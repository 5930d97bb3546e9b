package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.vecpair/vecpair.yaml.
type Config struct {
	Format    string `yaml:"format,omitempty"`
	Precision int    `yaml:"precision"`
	Top       int    `yaml:"top,omitempty"`
	Strict    bool   `yaml:"strict,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFile   string `yaml:"log_file,omitempty"`
}

// Dir returns the absolute path to ~/.vecpair/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".vecpair"), nil
}

// ConfigPath returns the absolute path to ~/.vecpair/vecpair.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vecpair.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Format:    "text",
		Precision: 4,
		LogLevel:  "warn",
	}
}

// Load reads ~/.vecpair/vecpair.yaml on top of DefaultConfig.
// A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.LogFile, err = ExpandPath(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the config file and applies VECPAIR_* overrides from the
// environment or ~/.vecpair/.env.
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if v, err := GetConfigValue("VECPAIR_FORMAT"); err != nil {
		return nil, err
	} else if v != "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, err := GetConfigValue("VECPAIR_PRECISION"); err != nil {
		return nil, err
	} else if v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid VECPAIR_PRECISION %q", v)
		}
		cfg.Precision = n
	}
	if v, err := GetConfigValue("VECPAIR_LOG_LEVEL"); err != nil {
		return nil, err
	} else if v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, err := GetConfigValue("VECPAIR_LOG_FILE"); err != nil {
		return nil, err
	} else if v != "" {
		cfg.LogFile, err = ExpandPath(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.vecpair/vecpair.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
