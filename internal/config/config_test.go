package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "http://localhost:8000", cfg.API.URL)
	assert.Equal(t, 2*time.Minute, cfg.API.Timeout)
	assert.Equal(t, "", cfg.API.CAFile)
	assert.Equal(t, filepath.Join(home, ".pdfgenie", "token"), cfg.Session.TokenFile)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Output.CacheTTL)
	assert.Equal(t, false, cfg.Storage.Enabled)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "pdfgenie-access-key", cfg.Storage.AccessKey)
	assert.Equal(t, "pdfgenie-secret-key", cfg.Storage.SecretKey)
	assert.Equal(t, "pdfgenie-results", cfg.Storage.Bucket)
	assert.Equal(t, false, cfg.Storage.UseSSL)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
				"LOG_FILE":  "/var/log/pdfgenie.log",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
				assert.Equal(t, "/var/log/pdfgenie.log", cfg.LogFile)
			},
		},
		{
			name: "api config override",
			envVars: map[string]string{
				"PDFGENIE_API_URL":       "https://api.pdfgenie.example",
				"PDFGENIE_API_TIMEOUT":   "15s",
				"PDFGENIE_API_CA_FILE":   "ca.pem",
				"PDFGENIE_API_CERT_FILE": "client.pem",
				"PDFGENIE_API_KEY_FILE":  "client-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://api.pdfgenie.example", cfg.API.URL)
				assert.Equal(t, 15*time.Second, cfg.API.Timeout)
				assert.Equal(t, "ca.pem", cfg.API.CAFile)
				assert.Equal(t, "client.pem", cfg.API.CertFile)
				assert.Equal(t, "client-key.pem", cfg.API.KeyFile)
			},
		},
		{
			name: "session config override",
			envVars: map[string]string{
				"PDFGENIE_SESSION_TOKEN_FILE": "/tmp/token",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/token", cfg.Session.TokenFile)
			},
		},
		{
			name: "output config override",
			envVars: map[string]string{
				"PDFGENIE_OUTPUT_DIR": "/tmp/out",
				"PDFGENIE_CACHE_TTL":  "5m",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/out", cfg.Output.Dir)
				assert.Equal(t, 5*time.Minute, cfg.Output.CacheTTL)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"MINIO_ENABLED":     "true",
				"MINIO_ENDPOINT":    "minio.example.com:9000",
				"MINIO_ACCESS_KEY":  "access123",
				"MINIO_SECRET_KEY":  "secret123",
				"MINIO_BUCKET_NAME": "custom-bucket",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.Storage.Enabled)
				assert.Equal(t, "minio.example.com:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "access123", cfg.Storage.AccessKey)
				assert.Equal(t, "secret123", cfg.Storage.SecretKey)
				assert.Equal(t, "custom-bucket", cfg.Storage.Bucket)
				assert.Equal(t, true, cfg.Storage.UseSSL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("PDFGENIE_API_TIMEOUT", "soon")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
