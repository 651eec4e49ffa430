// Package config reads the demo server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/neighborhood"
)

// Config holds all server configuration
type Config struct {
	ServerAddr string
	LogLevel   slog.Level
	Grid       GridConfig
}

// GridConfig describes the grid the server builds at startup
type GridConfig struct {
	Width, Height float64
	Cols, Rows    int
	Connectivity  neighborhood.Kind
	Torus         bool
	Flyweight     bool
	NeighborCache bool
}

// Options turns the grid settings into grid construction options.
func (c GridConfig) Options() []grid.Option {
	opts := []grid.Option{
		grid.WithConnectivity(c.Connectivity),
		grid.WithNeighborCache(c.NeighborCache),
	}
	if c.Torus {
		opts = append(opts, grid.WithTorus())
	}
	if c.Flyweight {
		opts = append(opts, grid.WithFlyweight())
	}
	return opts
}

// Load reads SERVER_ADDR, LOG_LEVEL and the GRID_* variables.
// Unset variables take their defaults; malformed ones are an error.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr: os.Getenv("SERVER_ADDR"),
		Grid: GridConfig{
			Cols:          50,
			Rows:          50,
			Connectivity:  neighborhood.Moore,
			NeighborCache: true,
		},
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
		}
	}

	g := &cfg.Grid
	var err error
	if g.Cols, err = intEnv("GRID_COLS", g.Cols); err != nil {
		return nil, err
	}
	if g.Rows, err = intEnv("GRID_ROWS", g.Rows); err != nil {
		return nil, err
	}
	if g.Width, err = floatEnv("GRID_WIDTH", float64(g.Cols)); err != nil {
		return nil, err
	}
	if g.Height, err = floatEnv("GRID_HEIGHT", float64(g.Rows)); err != nil {
		return nil, err
	}
	if v := os.Getenv("GRID_CONNECTIVITY"); v != "" {
		if g.Connectivity, err = neighborhood.ParseKind(v); err != nil {
			return nil, fmt.Errorf("config: GRID_CONNECTIVITY: %w", err)
		}
	}
	if g.Torus, err = boolEnv("GRID_TORUS", false); err != nil {
		return nil, err
	}
	if g.Flyweight, err = boolEnv("GRID_FLYWEIGHT", false); err != nil {
		return nil, err
	}
	if g.NeighborCache, err = boolEnv("GRID_NEIGHBOR_CACHE", g.NeighborCache); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
