package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ai_calls_platform/backend/internal/ai"
	"github.com/ai_calls_platform/backend/internal/config"
	httpapi "github.com/ai_calls_platform/backend/internal/http"
	"github.com/ai_calls_platform/backend/internal/service"
	"github.com/ai_calls_platform/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "calls-backend").Logger()

	var gen ai.Generator
	switch cfg.Provider() {
	case config.ProviderMock:
		gen = ai.MockGenerator{}
		logger.Info().Msg("using mock AI generator")
	case config.ProviderGemini:
		g, err := ai.NewOpenAICompatGenerator(cfg.GeminiAPIKey, cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create AI generator")
		}
		gen = g
		logger.Info().Str("model", cfg.AIModel).Msg("AI generator configured")
	default:
		logger.Warn().Msg("GEMINI_API_KEY not set, analyses will use fallback summaries")
	}

	st := store.New(cfg.CallsDir)
	calls := &service.CallService{Store: st, Logger: logger, Now: time.Now}
	analysis := &service.AnalysisService{
		Store:    st,
		Analyzer: &ai.Analyzer{Generator: gen, Logger: logger},
		Logger:   logger,
	}

	router := httpapi.Router(cfg, calls, analysis, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("calls_dir", cfg.CallsDir).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
