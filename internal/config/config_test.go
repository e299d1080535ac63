package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the remaining values fall back to their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8000", conf.HTTPPort)
		assert.Equal(t, "./tictactoe_engine", conf.Engine.Path)
		assert.Equal(t, 5*time.Second, conf.Engine.Timeout)
		assert.Equal(t, []string{"http://localhost:5173"}, conf.CORS.AllowedOrigins)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, time.Hour, conf.Redis.TTL)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a config file with engine and redis sections
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "engine:\n  path: /usr/local/bin/engine\n  timeout: 2s\nredis:\n  enabled: true\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the nested values are used
		assert.Equal(t, "/usr/local/bin/engine", conf.Engine.Path)
		assert.Equal(t, 2*time.Second, conf.Engine.Timeout)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestMustLoadEngine(t *testing.T) {
	// Given: the engine log level set in the environment
	t.Setenv("ENGINE_LOG_LEVEL", "debug")

	// When: loading the engine config
	conf := MustLoadEngine()

	// Then: the value comes from the environment
	assert.Equal(t, "debug", conf.LogLevel)
}
