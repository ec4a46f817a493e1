package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "access-secret")
	t.Setenv("REFRESH_SECRET_KEY", "refresh-secret")
}

func TestParseDefaults(t *testing.T) {
	setAuthEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, "localhost", cfg.Postgres.Host)
	require.Equal(t, "disable", cfg.Postgres.SSLMode)
}

func TestParseRequiresSecrets(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("REFRESH_SECRET_KEY", "refresh-secret")

	_, err := Parse()
	require.Error(t, err)
}

func TestParseRejectsSharedSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "same")
	t.Setenv("REFRESH_SECRET_KEY", "same")

	_, err := Parse()
	require.ErrorContains(t, err, "must differ")
}

func TestParseOverrides(t *testing.T) {
	setAuthEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestParseRejectsBadCost(t *testing.T) {
	setAuthEnv(t)
	t.Setenv("BCRYPT_COST", "99")

	_, err := Parse()
	require.ErrorContains(t, err, "BCRYPT_COST")
}
