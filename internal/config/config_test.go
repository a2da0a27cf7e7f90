package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: localhost
  name: souqdb
  user: souq
feed:
  base_url: https://feed.example.com/v1
auth:
  jwt_secret: test-secret
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "souqdb", cfg.Database.Name)
				assert.Equal(t, "souq", cfg.Database.User)
				assert.Equal(t, "https://feed.example.com/v1", cfg.Feed.BaseURL)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 100, cfg.Feed.PageSize)
				assert.Equal(t, 20, cfg.Feed.MaxPagesPerCycle)
				assert.InEpsilon(t, 5.0, cfg.Feed.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, int64(5000), cfg.Feed.RateLimit.DailyLimit)
				assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
				assert.Equal(t, 10, cfg.Session.RecentlyViewedSize)
				assert.Equal(t, 5, cfg.Session.RecentSearchesSize)
				assert.Equal(t, 24*time.Hour, cfg.Alerts.Cooldown)
				assert.Equal(t, time.Hour, cfg.Schedule.IngestionInterval)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.RescoreInterval)
				assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
				assert.Equal(t, "souqly", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: souqdb
  user: souq
  password: ${SOUQ_TEST_DB_PASSWORD}
feed:
  base_url: https://feed.example.com/v1
auth:
  jwt_secret: test-secret
`,
			envVars: map[string]string{
				"SOUQ_TEST_DB_PASSWORD": "s3cret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "s3cret", cfg.Database.Password)
			},
		},
		{
			name: "missing database fields",
			yaml: `
feed:
  base_url: https://feed.example.com/v1
auth:
  jwt_secret: test-secret
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing feed base url",
			yaml: `
database:
  host: localhost
  name: souqdb
  user: souq
auth:
  jwt_secret: test-secret
`,
			wantErr: "feed.base_url is required",
		},
		{
			name: "missing jwt secret",
			yaml: `
database:
  host: localhost
  name: souqdb
  user: souq
feed:
  base_url: https://feed.example.com/v1
`,
			wantErr: "auth.jwt_secret is required",
		},
		{
			name:    "invalid yaml",
			yaml:    "::: not yaml :::",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host:    "db.internal",
		Port:    5433,
		Name:    "souqdb",
		User:    "souq",
		SSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 dbname=souqdb user=souq password= sslmode=require",
		d.DSN(),
	)
}
