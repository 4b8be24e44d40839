package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 3*time.Hour, cfg.VerificationTokenValidityDuration)
	assert.Equal(t, 5*time.Minute, cfg.VerifyRateLimitWindow)
	assert.Equal(t, 3, cfg.VerifyRateLimitMaxRequests)
	assert.Empty(t, cfg.SecretKey, "no default secret: startup must fail without one")
}

func TestValidate_SecretRequired(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.ErrorIs(t, cfg.Validate(), ErrSecretRequired)

	cfg.SecretKey = "k"
	require.NoError(t, cfg.Validate())
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-a", ":9090", "-s", "flag-secret", "-t", "60", "-w", "10"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 10*time.Minute, cfg.VerifyRateLimitWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenValidityDuration, "untouched flags keep defaults")
}

func TestParseJson_LoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"endpoint_addr_http": ":7070",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"access_token_validity_duration": "12h",
		"refresh_token_validity_duration": "72h",
		"verification_token_validity_duration": "1h",
		"verify_rate_limit_window": "2m",
		"verify_rate_limit_max_requests": 5,
		"mail_api_endpoint": "https://mail.example/send",
		"mail_api_key": "mk",
		"mail_sender_name": "Moodframe",
		"mail_sender_email": "no-reply@moodframe.app",
		"verification_link_base": "https://moodframe.app"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 2*time.Minute, cfg.VerifyRateLimitWindow)
	assert.Equal(t, 5, cfg.VerifyRateLimitMaxRequests)
}

func TestParseJson_NoFlagLeavesConfigUntouched(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg
	parseJson(cfg)

	assert.Equal(t, want, *cfg)
}
