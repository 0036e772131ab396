package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is used when TADBEERX_API_BASE_URL is not set and no config
// file overrides it.
const DefaultBaseURL = "https://tadbeerx-api.vercel.app"

type Config struct {
	Addr       string        `yaml:"addr"`
	APITimeout time.Duration `yaml:"timeout"`
	Backend    BackendConfig `yaml:"backend"`
	Session    SessionConfig `yaml:"session"`
}

// BackendConfig configures the remote TadbeerX API client.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout is the per-request timeout; zero means requests run until the
	// remote responds or the transport fails.
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// SessionConfig configures where the bearer token is persisted.
type SessionConfig struct {
	// Backend is one of "file", "keyring" or "memory".
	Backend string `yaml:"backend"`
	// TokenPath is the token file location for the file backend.
	TokenPath string `yaml:"token_path"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:       getEnv("TADBEERX_ADDR", ":8090"),
		APITimeout: 15 * time.Second,
		Backend: BackendConfig{
			BaseURL:   getEnv("TADBEERX_API_BASE_URL", DefaultBaseURL),
			UserAgent: "tadbeerx-admin-console",
		},
		Session: SessionConfig{
			Backend:   getEnv("TADBEERX_SESSION_BACKEND", "file"),
			TokenPath: getEnv("TADBEERX_TOKEN_PATH", defaultTokenPath()),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the parts of the configuration that would otherwise fail at
// first use.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base_url must not be empty")
	}
	switch c.Session.Backend {
	case "file", "keyring", "memory":
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.Session.Backend == "file" && c.Session.TokenPath == "" {
		return fmt.Errorf("session token_path must be set for the file backend")
	}
	return nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tadbeerx", "admin_token")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
