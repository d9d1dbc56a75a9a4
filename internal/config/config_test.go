package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/winnow/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 5, cfg.Letters)
	assert.Equal(t, 6, cfg.Guesses)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "winnow.yaml", `
words: /usr/share/dict/words
letters: 6
pool: dictionary
opening: tarsel
server:
  address: ":9090"
redis:
  address: "localhost:6379"
  ttl: "24h"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/share/dict/words", cfg.Words)
	assert.Equal(t, 6, cfg.Letters)
	assert.Equal(t, 6, cfg.Guesses, "unset fields keep their defaults")
	assert.Equal(t, "dictionary", cfg.Pool)
	assert.Equal(t, ":9090", cfg.Server.Address)

	ttl, err := cfg.Redis.TTLDuration()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "winnow.json", `{"letters": 4, "guesses": 10}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Letters)
	assert.Equal(t, 10, cfg.Guesses)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad pool":    `pool: "middle-out"`,
		"bad letters": `letters: -1`,
		"bad guesses": `guesses: 0`,
		"bad ttl":     "redis:\n  ttl: \"soon\"",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "winnow.yaml", content))
			assert.Error(t, err)
		})
	}
}

func TestTTLDuration_EmptyMeansNoExpiry(t *testing.T) {
	ttl, err := config.RedisConfig{}.TTLDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), ttl)
}
