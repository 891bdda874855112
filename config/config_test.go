package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "https://api.pwnedpasswords.com/range/", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "sha1", cfg.Mode)
	assert.False(t, cfg.Padding)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkmypass.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url = "http://localhost:8080/range/"
timeout = "3s"
padding = true
`), 0o600))

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "http://localhost:8080/range/", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.Padding)
	// keys absent from the file keep their defaults
	assert.Equal(t, "sha1", cfg.Mode)
	assert.Equal(t, HTTP_CLIENT_USER_AGENT, cfg.UserAgent)
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`timeout = [`), 0o600))
	assert.Error(t, cfg.LoadFile(path))
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvAPIURL:    "http://127.0.0.1:9999/range/",
		EnvTimeout:   "250ms",
		EnvPadding:   "true",
		EnvMode:      "ntlm",
		EnvUserAgent: "agent/1.0",
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		APIURL:    "http://127.0.0.1:9999/range/",
		Timeout:   250 * time.Millisecond,
		Padding:   true,
		Mode:      "ntlm",
		UserAgent: "agent/1.0",
	}, cfg)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvAPIURL: "", EnvTimeout: ""})))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	assert.Error(t, Default().ApplyEnv(envMap(map[string]string{EnvTimeout: "soon"})))
	assert.Error(t, Default().ApplyEnv(envMap(map[string]string{EnvPadding: "maybe"})))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.APIURL = "ftp://example.com/range/"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.APIURL = "://bad"
	assert.Error(t, cfg.Validate())
}
