package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 3, cfg.Game.MinPlayers)
	assert.Equal(t, 8, cfg.Game.MaxPlayers)
	assert.Empty(t, cfg.Game.ClueSetPath)
	assert.Equal(t, "en", cfg.Game.Language)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestOverrides(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{
		"HOST":          "::1",
		"PORT":          "9000",
		"ENV":           "production",
		"MIN_PLAYERS":   "2",
		"MAX_PLAYERS":   "4",
		"CLUE_SET_PATH": "/srv/boards/week1.json",
		"LANGUAGE":      "es",
		"LOG_LEVEL":     "debug",
		"LOG_FORMAT":    "json",
	})
	require.NoError(t, err)

	assert.Equal(t, "[::1]:9000", cfg.GetAddr())
	assert.Equal(t, "production", cfg.Server.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, "/srv/boards/week1.json", cfg.Game.ClueSetPath)
	assert.Equal(t, "es", cfg.Game.Language)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "not a number", vars: map[string]string{"MIN_PLAYERS": "three"}},
		{name: "zero minimum", vars: map[string]string{"MIN_PLAYERS": "0"}},
		{name: "max below min", vars: map[string]string{"MIN_PLAYERS": "5", "MAX_PLAYERS": "4"}},
		{name: "bad format", vars: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "bad level", vars: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.FromMap(tt.vars)
			assert.Error(t, err)
		})
	}
}
