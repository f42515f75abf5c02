package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	LogFile  string  `env:"LOG_FILE"`
	API      API     `envPrefix:"PDFGENIE_API_"`
	Session  Session `envPrefix:"PDFGENIE_SESSION_"`
	Output   Output  `envPrefix:"PDFGENIE_"`
	Storage  Storage `envPrefix:"MINIO_"`
}

// API contains backend connection parameters.
type API struct {
	URL      string        `env:"URL" envDefault:"http://localhost:8000"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"2m"`
	CAFile   string        `env:"CA_FILE"`
	CertFile string        `env:"CERT_FILE"`
	KeyFile  string        `env:"KEY_FILE"`
}

// Session contains session persistence parameters.
type Session struct {
	TokenFile string `env:"TOKEN_FILE"`
}

// Output contains result handling parameters.
type Output struct {
	Dir      string        `env:"OUTPUT_DIR" envDefault:"."`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30m"`
}

// Storage contains parameters of the optional object storage sink.
type Storage struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"pdfgenie-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"pdfgenie-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"pdfgenie-results"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

const defaultTokenFile = ".pdfgenie/token"

// NewConfig loads configuration from the .env file, if any, and environment variables.
func NewConfig() (*Config, error) {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Session.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.Session.TokenFile = filepath.Join(home, defaultTokenFile)
	}

	return &cfg, nil
}
