package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setupLogger(cfg)

	list, err := words.Load(cfg.Words.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Words.File).Msg("failed to load word list")
	}
	var src game.WordSource = list
	if cfg.Words.Source == "daily" {
		src = daily.Source{Words: list.Words(), Salt: cfg.Words.DailySalt}
	}
	n, _, _ := list.Stats()
	log.Info().Int("words", n).Str("source", cfg.Words.Source).Msg("word list loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go store.RunJanitor(ctx, mem, cfg.Game.SweepInterval, cfg.Game.IdleTTL, func(removed int) {
		log.Info().Int("removed", removed).Int("games", mem.Len()).Msg("evicted idle games")
	})

	srv := httpserver.New(httpserver.Deps{
		Store:        mem,
		Words:        src,
		WordStats:    list.Stats,
		Secret:       []byte(cfg.Session.Secret),
		SessionTTL:   cfg.Session.TTL,
		ClientOrigin: cfg.HTTP.ClientOrigin,
		Production:   cfg.Production(),
		Timeout:      cfg.HTTP.HandlerTimeout,
		WSSendBuffer: cfg.HTTP.WSSendBuffer,
	})
	hs := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Str("env", cfg.Env).Msg("starting go-server")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// setupLogger applies LOG_LEVEL and LOG_FORMAT to the global zerolog logger.
func setupLogger(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Log.Format == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
