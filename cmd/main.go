package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/naval-combat/api"
	"github.com/saeidalz13/naval-combat/db"
	"github.com/saeidalz13/naval-combat/db/sqlc"
	"github.com/saeidalz13/naval-combat/internal/config"
	mb "github.com/saeidalz13/naval-combat/models/battleship"
	mc "github.com/saeidalz13/naval-combat/models/connection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.Stage == config.StageDev {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Analytics are optional in dev
	var querier sqlc.Querier
	if cfg.DatabaseUrl != "" {
		sqlDb := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer sqlDb.Close()
		querier = sqlc.New(sqlDb)
	} else {
		log.Warn().Msg("DATABASE_URL not set; analytics disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionManager := mc.NewBattleshipSessionManager()
	go sessionManager.CleanupPeriodically(ctx)

	matchManager := mb.NewBattleshipMatchManager()
	rp := api.NewRequestProcessor(sessionManager, matchManager, querier)

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           api.NewRouter(rp),
		ReadHeaderTimeout: time.Second * 10,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Int("port", cfg.Port).Str("stage", cfg.Stage).Msg("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
