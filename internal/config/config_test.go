package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	root := filepath.Join(home, ".researchai")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Service.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Service.RequestTimeout)
	assert.Equal(t, ResolverHTTP, cfg.Chat.Resolver)
	assert.Equal(t, 60*time.Second, cfg.Chat.ResolverTimeout)
	assert.Equal(t, BackendFile, cfg.Session.Backend)
	assert.Equal(t, filepath.Join(root, "sessions"), cfg.Session.Dir)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, filepath.Join(root, "summaries.toml"), cfg.Summaries.Path)
	assert.Equal(t, filepath.Join(root, "rai.log"), cfg.Log.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".researchai"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".researchai", "config.toml"), []byte(`
[service]
base_url = "https://papers.example.com"

[chat]
resolver = "heuristic"
resolver_timeout = "5s"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "https://papers.example.com", cfg.Service.BaseURL)
	assert.Equal(t, ResolverHeuristic, cfg.Chat.Resolver)
	assert.Equal(t, 5*time.Second, cfg.Chat.ResolverTimeout)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAI_SERVICE_BASE_URL", "http://localhost:9000")
	t.Setenv("RAI_SESSION_FINGERPRINT", "tmux-3")
	t.Setenv("RAI_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.Service.BaseURL)
	assert.Equal(t, "tmux-3", cfg.Session.Fingerprint)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("resolver", func(t *testing.T) {
		t.Setenv("RAI_CHAT_RESOLVER", "oracle")
		_, err := Load(viper.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("redis without address", func(t *testing.T) {
		t.Setenv("RAI_SESSION_BACKEND", "redis")
		_, err := Load(viper.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RedisAddr")
	})
}
