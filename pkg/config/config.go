package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds all runtime configuration. Values are layered: per-environment
// defaults, then an optional YAML config file, then environment variables.
type Config struct {
	DatabaseBusyTimeout time.Duration `koanf:"-"`
	DatabaseDebug       bool          `koanf:"database_debug"`
	DatabaseFilePath    string        `koanf:"database_file_path"`
	Environment         string        `koanf:"-"`
	FrontendDir         string        `koanf:"frontend_dir"`
	GoogleBooksAPIKey   string        `koanf:"google_books_api_key"`
	GoogleBooksBaseURL  string        `koanf:"google_books_base_url"`
	MetadataRateLimit   int           `koanf:"metadata_rate_limit"`
	MetadataRateWindow  time.Duration `koanf:"-"`
	ServerHost          string        `koanf:"server_host"`
	ServerPort          int           `koanf:"server_port"`
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	// A .env file is optional; a missing one is fine.
	_ = godotenv.Load()

	cfg := defaultConfig()

	environment := os.Getenv(environmentENV)
	if environment == "" {
		environment = "development"
	}
	cfg.Environment = environment

	switch environment {
	case "development":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	k := koanf.New(".")

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "./booklog.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	// Environment variables override the config file: DATABASE_FILE_PATH maps
	// to database_file_path and so on.
	err := k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests: in-memory database, no
// frontend directory, loopback host.
func NewForTest() *Config {
	cfg := defaultConfig()
	cfg.Environment = "test"
	loadTestConfig(cfg)
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		DatabaseBusyTimeout: 5 * time.Second,
		DatabaseFilePath:    "./tmp/booklog.sqlite",
		FrontendDir:         "./frontend",
		GoogleBooksBaseURL:  "https://www.googleapis.com/books/v1",
		MetadataRateLimit:   5,
		MetadataRateWindow:  10 * time.Second,
		ServerHost:          "0.0.0.0",
		ServerPort:          4000,
	}
}
