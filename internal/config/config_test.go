package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"JWT_SECRET": "s3cret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8000", cfg.Port)
				assert.Equal(t, "postgres", cfg.Database.Driver)
				assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTTL)
				assert.Equal(t, "https://cert.example.com", cfg.CertificateBaseURL)
				assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
				assert.False(t, cfg.IsProduction())
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"JWT_SECRET":       "s3cret",
				"DB_DRIVER":        "sqlite",
				"LOG_LEVEL":        "debug",
				"ACCESS_TOKEN_TTL": "15m",
				"KAFKA_BROKERS":    "k1:9092,k2:9092",
				"ENVIRONMENT":      "production",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
				assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
				assert.True(t, cfg.IsProduction())
			},
		},
		{
			name:    "missing secret",
			env:     map[string]string{"JWT_SECRET": ""},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"JWT_SECRET": "x", "DB_DRIVER": "oracle"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
