package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/advmanik/casefolio/internal/config"
	"github.com/advmanik/casefolio/internal/logging"
	"github.com/advmanik/casefolio/internal/server"
	"github.com/advmanik/casefolio/internal/store"
	"github.com/gin-gonic/gin"
)

//go:embed all:dist
var frontendDist embed.FS

func main() {
	ctx := context.Background()
	cfg := config.Load()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.DatabaseDSN != "" {
		log.Warn(ctx, "relaxed TLS verification on the store connection (development mode)")
	}

	// An unreachable store at startup is fatal; serving without persistence
	// would silently lose admin writes.
	cases, err := store.Open(ctx, cfg)
	if err != nil {
		log.Error(ctx, "store initialization failed", "error", err)
		os.Exit(1)
	}
	if cfg.DatabaseDSN != "" {
		log.Info(ctx, "connected to postgres", "database", cfg.DatabaseName)
	} else {
		log.Info(ctx, "using embedded file store", "dir", cfg.DataDir)
	}

	dist, err := fs.Sub(frontendDist, "dist")
	if err != nil {
		log.Error(ctx, "embedded client bundle missing", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.New(cfg, cases, log, dist),
	}

	go func() {
		log.Info(ctx, "listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info(ctx, "shutdown signal received, finalizing writes")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
	cases.Wait()
	cases.Close()
	log.Info(ctx, "shutdown complete")
}
