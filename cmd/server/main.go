package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/ncastellano/impostor/internal/config"
	"github.com/ncastellano/impostor/internal/server"
	"github.com/ncastellano/impostor/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	kv, err := storage.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer kv.Close()
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Rooms & ledgers ---
	ledgers := server.NewLedgers(kv, logger)
	rooms := server.NewRooms(kv, logger, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := rooms.Restore(ctx); err != nil {
		return fmt.Errorf("restoring rooms: %w", err)
	}

	// --- HTTP Server ---
	srv := server.New(server.Options{
		Addr:        cfg.HTTPAddr,
		PublicURL:   cfg.PublicURL,
		SPADir:      cfg.SPADir,
		CORSOrigins: cfg.CORSOrigins,
	}, logger, rooms, ledgers, kv)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
