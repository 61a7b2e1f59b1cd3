package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "assets/maps/jungle.json", cfg.MapPath)
	assert.Equal(t, "assets/assets.json", cfg.AssetsPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "stabby.log", cfg.LogFile)
	assert.False(t, cfg.Audio)
	assert.Equal(t, 64, cfg.PoolCapacity)
	assert.Equal(t, time.Second/60, cfg.FrameDuration())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STABBY_FPS", "30")
	t.Setenv("STABBY_MAP", "maps/cave.json")
	t.Setenv("STABBY_LOG_LEVEL", "debug")
	t.Setenv("STABBY_AUDIO", "true")
	t.Setenv("STABBY_POOL_CAPACITY", "256")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "maps/cave.json", cfg.MapPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Audio)
	assert.Equal(t, 256, cfg.PoolCapacity)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero fps", key: "STABBY_FPS", value: "0"},
		{name: "fps too high", key: "STABBY_FPS", value: "5000"},
		{name: "fps not a number", key: "STABBY_FPS", value: "fast"},
		{name: "negative pool capacity", key: "STABBY_POOL_CAPACITY", value: "-1"},
		{name: "bad bool", key: "STABBY_AUDIO", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadArgs_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("STABBY_FPS", "30")
	t.Setenv("STABBY_MAP", "maps/cave.json")

	cfg, err := LoadArgs([]string{"--map", "maps/cave.toml", "--audio", "--log-level=warn"})
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "maps/cave.toml", cfg.MapPath)
	assert.True(t, cfg.Audio)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadArgs_Invalid(t *testing.T) {
	_, err := LoadArgs([]string{"--fps", "0"})
	require.Error(t, err)

	_, err = LoadArgs([]string{"--no-such-flag"})
	require.Error(t, err)
}
