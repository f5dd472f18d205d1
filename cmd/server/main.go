package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirkokoaa-byte/sales/internal/config"
	"github.com/amirkokoaa-byte/sales/internal/ledger"
	"github.com/amirkokoaa-byte/sales/internal/logger"
	"github.com/amirkokoaa-byte/sales/internal/server"
	"github.com/amirkokoaa-byte/sales/internal/store"
	"github.com/joho/godotenv"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Prepare the database and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	if err := logger.Setup(logger.FromEnv()); err != nil {
		_ = logger.Setup(logger.DefaultConfig())
	}
	log := logger.WithComponent("main")
	cfg := config.Load()

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store open failed")
	}
	if *migrateOnlyFlag {
		log.Info().Msg("database ready; exiting as requested")
		return
	}

	l := ledger.Open(st)
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting server")

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(l, st)}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
