package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridspace/internal/config"
	"github.com/katalvlaran/gridspace/neighborhood"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_ADDR", "LOG_LEVEL", "GRID_COLS", "GRID_ROWS", "GRID_WIDTH",
		"GRID_HEIGHT", "GRID_CONNECTIVITY", "GRID_TORUS", "GRID_FLYWEIGHT", "GRID_NEIGHBOR_CACHE"} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, config.GridConfig{
		Width: 50, Height: 50, Cols: 50, Rows: 50,
		Connectivity: neighborhood.Moore, NeighborCache: true,
	}, cfg.Grid)
	assert.Len(t, cfg.Grid.Options(), 2)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRID_COLS", "20")
	t.Setenv("GRID_ROWS", "10")
	t.Setenv("GRID_WIDTH", "200")
	t.Setenv("GRID_HEIGHT", "")
	t.Setenv("GRID_CONNECTIVITY", "hex-vertical")
	t.Setenv("GRID_TORUS", "true")
	t.Setenv("GRID_FLYWEIGHT", "1")
	t.Setenv("GRID_NEIGHBOR_CACHE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 20, cfg.Grid.Cols)
	assert.Equal(t, 10, cfg.Grid.Rows)
	assert.Equal(t, 200.0, cfg.Grid.Width)
	assert.Equal(t, 10.0, cfg.Grid.Height)
	assert.Equal(t, neighborhood.HexVertical, cfg.Grid.Connectivity)
	assert.True(t, cfg.Grid.Torus)
	assert.True(t, cfg.Grid.Flyweight)
	assert.False(t, cfg.Grid.NeighborCache)
	assert.Len(t, cfg.Grid.Options(), 4)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"GRID_COLS":         "many",
		"GRID_WIDTH":        "wide",
		"GRID_CONNECTIVITY": "triangle",
		"GRID_TORUS":        "sometimes",
		"LOG_LEVEL":         "chatty",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
