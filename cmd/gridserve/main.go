// Command gridserve serves spatial and path queries over a grid built from
// environment settings.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/internal/config"
	"github.com/katalvlaran/gridspace/internal/server"
	"github.com/katalvlaran/gridspace/topology"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, log); err != nil {
		log.Error("gridserve stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	fp := &geom.Bounds{Max: geom.Point{X: cfg.Grid.Width, Y: cfg.Grid.Height}}
	g, err := grid.New(fp, cfg.Grid.Cols, cfg.Grid.Rows, append(cfg.Grid.Options(), grid.WithLogger(log))...)
	if err != nil {
		return err
	}
	top, err := topology.New(g, topology.WithLogger(log))
	if err != nil {
		return err
	}
	defer top.Dispose()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.New(top, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ServerAddr,
			"cols", cfg.Grid.Cols, "rows", cfg.Grid.Rows,
			"connectivity", cfg.Grid.Connectivity.String())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
