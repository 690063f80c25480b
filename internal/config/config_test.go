package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"checkers/internal/engine"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapLookup(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":2888", cfg.Addr)
	require.Equal(t, engine.Medium(), cfg.Difficulty)
	require.Equal(t, 500*time.Millisecond, cfg.AIDelay)
	require.True(t, cfg.OpenBrowser)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(mapLookup(map[string]string{
		EnvAddr:        "127.0.0.1:8080",
		EnvWebDir:      "/srv/web",
		EnvDifficulty:  "HARD",
		EnvAIDelay:     "0s",
		EnvLogLevel:    "Debug",
		EnvSeed:        "7",
		EnvOpenBrowser: "false",
	}))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8080", cfg.Addr)
	require.Equal(t, "/srv/web", cfg.WebDir)
	require.Equal(t, engine.Hard(), cfg.Difficulty)
	require.Zero(t, cfg.AIDelay)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, int64(7), cfg.Seed)
	require.False(t, cfg.OpenBrowser)
}

func TestFromEnvBlankMeansUnset(t *testing.T) {
	cfg, err := FromEnv(mapLookup(map[string]string{EnvAddr: "  ", EnvDifficulty: ""}))
	require.NoError(t, err)
	require.Equal(t, ":2888", cfg.Addr)
	require.Equal(t, engine.Medium(), cfg.Difficulty)
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]string{
		EnvDifficulty:  "grandmaster",
		EnvAIDelay:     "soon",
		EnvSeed:        "x",
		EnvOpenBrowser: "maybe",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(mapLookup(map[string]string{key: val}))
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}

	_, err := FromEnv(mapLookup(map[string]string{EnvDifficulty: "grandmaster"}))
	require.ErrorIs(t, err, engine.ErrUnknownDifficulty)
}

func TestLoadReadsDotEnv(t *testing.T) {
	for _, k := range []string{EnvAddr, EnvDifficulty, EnvAIDelay} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	// 已经存在的环境变量不被 .env 覆盖
	t.Setenv(EnvAIDelay, "1s")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKERS_ADDR=:9999\nCHECKERS_DIFFICULTY=easy\nCHECKERS_AI_DELAY=5s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, engine.Easy(), cfg.Difficulty)
	require.Equal(t, time.Second, cfg.AIDelay)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}
