// Package config loads dnsops configuration from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/hetznerdns/internal/domain"
	"github.com/lite-lake/hetznerdns/internal/domain/valueobject"
)

const (
	// EnvToken is the environment variable the Hetzner DNS API docs use.
	EnvToken = "HETZNER_API_ACCESS_TOKEN"

	// DefaultPath is the config file looked up when --config is not given.
	DefaultPath = "dnsops.yaml"

	// DefaultSnapshot is where pulled records land when the config does
	// not say otherwise.
	DefaultSnapshot = "dns.yaml"
)

// Config drives the dnsops CLI. Everything is optional except the token,
// which may come from the config file, the environment, or a .env file.
type Config struct {
	Token    valueobject.Token `yaml:"token"`
	BaseURL  string            `yaml:"base_url,omitempty"`
	Zone     string            `yaml:"zone,omitempty"`
	Snapshot string            `yaml:"snapshot,omitempty"`
}

// Load reads the config file at path and applies environment overrides. An
// empty path means DefaultPath, whose absence is not an error. A .env file
// in the working directory is folded into the environment first; variables
// already set win over .env entries.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// the default config file is optional
	default:
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigReadFailed, path, err)
	}

	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = valueobject.NewToken(v)
	}
	if cfg.Snapshot == "" {
		cfg.Snapshot = DefaultSnapshot
	}

	return cfg, nil
}

// Validate checks that the config can talk to the API.
func (c *Config) Validate() error {
	if c.Token.IsZero() {
		return fmt.Errorf("%w: set %s or the token key in the config file", domain.ErrMissingToken, EnvToken)
	}
	return nil
}
