package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	ServerPort    string `yaml:"server_port"`
	SessionSecret string `yaml:"session_secret"`

	UploadDir       string `yaml:"upload_dir"`
	DemoLogin       bool   `yaml:"demo_login"`
	BulkConcurrency int    `yaml:"bulk_concurrency"`

	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

// Load reads .env, the optional CONFIG_FILE and the environment.
// Missing required settings are fatal.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv builds a Config from CONFIG_FILE (if set) overridden by environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBDSN, "DB_DSN")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.SessionSecret, "SESSION_SECRET")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.AdminEmail, "ADMIN_EMAIL")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")

	if v := os.Getenv("DEMO_LOGIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DEMO_LOGIN: %w", err)
		}
		cfg.DemoLogin = b
	}
	if v := os.Getenv("BULK_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BULK_CONCURRENCY: %w", err)
		}
		cfg.BulkConcurrency = n
	}

	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}

	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	switch cfg.DBDriver {
	case "":
		cfg.DBDriver = "postgres"
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.BulkConcurrency <= 0 {
		cfg.BulkConcurrency = 4
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@company.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "Admin123!"
	}

	return cfg, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
