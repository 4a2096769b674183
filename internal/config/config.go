// Package config loads service configuration from an optional YAML file
// overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultMaxUploadBytes = 10 << 20 // matches the hosted bucket limit

type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// DatabaseURL selects the Postgres store when set; empty falls back to
	// the JSON file store at DataFile.
	DatabaseURL string `yaml:"database_url"`
	DataFile    string `yaml:"data_file"`

	// AdminPassword is the plain login secret. AdminPasswordHash, when set,
	// takes precedence and is compared with bcrypt.
	AdminPassword     string `yaml:"admin_password"`
	AdminPasswordHash string `yaml:"admin_password_hash"`

	// UploadDir holds uploaded files; PublicBaseURL forms their public URLs.
	UploadDir     string `yaml:"upload_dir"`
	PublicBaseURL string `yaml:"public_base_url"`

	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Load reads CONFIG_FILE (if set) and then the environment. Environment
// always wins.
func Load() (Config, error) {
	cfg := Config{
		Port:           "8080",
		DataFile:       "data/content.json",
		UploadDir:      "uploads",
		MaxUploadBytes: defaultMaxUploadBytes,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	envString(&cfg.Port, "PORT")
	envString(&cfg.DatabaseURL, "DATABASE_URL")
	envString(&cfg.DataFile, "DATA_FILE")
	envString(&cfg.AdminPassword, "ADMIN_PASSWORD")
	envString(&cfg.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	envString(&cfg.UploadDir, "UPLOAD_DIR")
	envString(&cfg.PublicBaseURL, "PUBLIC_BASE_URL")
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	return cfg, nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
