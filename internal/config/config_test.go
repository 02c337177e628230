package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"tracker/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 15*time.Second, cfg.Tracking.AttemptTimeout)
	require.Equal(t, uint64(2), cfg.Tracking.MaxRetries)
	require.Equal(t, 4, cfg.Tracking.LocalityConcurrency)
	require.Equal(t, "memory", cfg.Credentials.Backend)
	require.Equal(t, "none", cfg.Locality.Backend)
	require.Equal(t, "tracker", cfg.Database.DatabaseName)
	require.EqualValues(t, 3, cfg.Database.ConnectRetries)
	require.Empty(t, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.Carriers.UPS.Enabled)
}

func TestLoad_ChainsAndCarriers(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: test
tracking:
  chains:
    fedex: [fedex, usps]
carriers:
  ups:
    enabled: true
    clientId: id
    clientSecret: secret
  ontrac:
    enabled: true
    account: "37"
    password: pw
`))
	require.NoError(t, err)

	require.Equal(t, map[string][]string{"fedex": {"fedex", "usps"}}, cfg.Tracking.Chains)
	require.True(t, cfg.Carriers.UPS.Enabled)
	require.Equal(t, "id", cfg.Carriers.UPS.ClientID)
	require.Equal(t, "37", cfg.Carriers.OnTrac.Account)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown environment",
			body: "environment: staging\n",
		},
		{
			name: "geocoder without key",
			body: "environment: test\nlocality:\n  backend: geocoder\n",
		},
		{
			name: "enabled carrier without secret",
			body: "environment: test\ncarriers:\n  fedex:\n    enabled: true\n    clientId: id\n",
		},
		{
			name: "chain for unknown carrier",
			body: "environment: test\ntracking:\n  chains:\n    tnt: [tnt]\n",
		},
		{
			name: "empty chain",
			body: "environment: test\ntracking:\n  chains:\n    ups: []\n",
		},
		{
			name: "unknown credentials backend",
			body: "environment: test\ncredentials:\n  backend: memcached\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}
