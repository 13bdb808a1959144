package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultEnv        = "development"
	defaultTokenTTL   = "7d"
)

// AppConfig holds runtime startup configuration, loaded from YAML with
// environment-variable overrides (the original app was dotenv-driven).
type AppConfig struct {
	Port      int       `yaml:"port"`
	DSN       string    `yaml:"dsn"` // MySQL DSN
	Env       string    `yaml:"env"` // "development" | "production"
	JWTSecret string    `yaml:"jwt_secret"`
	TokenTTL  string    `yaml:"token_ttl"` // e.g. "7d", "12h"
	ClientURL string    `yaml:"client_url"`
	S3        S3Options `yaml:"s3"`
}

// S3Options configures the external image store.
type S3Options struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// Configured reports whether enough S3 settings are present to build the
// image store.
func (s S3Options) Configured() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Load reads the YAML config at path (a missing file is not an error) and
// applies environment overrides and defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Environment-only configuration.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("database DSN is required (set dsn in %s or the DSN env var)", path)
	}
	if _, err := ParseLifetime(cfg.TokenTTL); err != nil {
		return nil, fmt.Errorf("invalid token_ttl %q: %w", cfg.TokenTTL, err)
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Port = port
		}
	}
	if v := os.Getenv("DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		c.TokenTTL = v
	}
	if v := os.Getenv("CLIENT_URL"); v != "" {
		c.ClientURL = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.S3.Endpoint = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		c.S3.Region = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.S3.Bucket = v
	}
	if v := os.Getenv("S3_ACCESS_KEY_ID"); v != "" {
		c.S3.AccessKeyID = v
	}
	if v := os.Getenv("S3_SECRET_ACCESS_KEY"); v != "" {
		c.S3.SecretAccessKey = v
	}
	if v := os.Getenv("S3_CUSTOM_DOMAIN"); v != "" {
		c.S3.CustomDomain = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port <= 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.TokenTTL) == "" {
		c.TokenTTL = defaultTokenTTL
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// TokenLifetime returns the parsed token TTL. Load validated the value.
func (c *AppConfig) TokenLifetime() time.Duration {
	d, _ := ParseLifetime(c.TokenTTL)
	return d
}

// ParseLifetime parses a duration that may use a day suffix ("7d") in
// addition to the standard Go duration syntax.
func ParseLifetime(raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil {
			return 0, err
		}
		d := time.Duration(days * float64(24*time.Hour))
		if d <= 0 {
			return 0, fmt.Errorf("non-positive duration")
		}
		return d, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration")
	}
	return d, nil
}
