package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skillup-ia/skillup-api/config"
	"github.com/skillup-ia/skillup-api/internal/ai/gemini"
	v1 "github.com/skillup-ia/skillup-api/internal/delivery/http/v1"
	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/internal/repository/jsonfile"
	"github.com/skillup-ia/skillup-api/internal/usecase"
	"github.com/skillup-ia/skillup-api/pkg/logger"
	"github.com/skillup-ia/skillup-api/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillup backend", "port", cfg.Port, "data_dir", cfg.DataDir)

	// 3. Setup Repositories (flat JSON files under DATA_DIR)
	profileRepo := jsonfile.NewProfileRepository(cfg.DataDir)
	recommendationRepo := jsonfile.NewRecommendationRepository(cfg.DataDir)
	userRepo := jsonfile.NewUserRepository(cfg.DataDir)

	// 4. Setup Gemini (optional - /ai/summary answers 503 without it)
	var generator domain.SummaryGenerator
	if cfg.GeminiAPIKey != "" {
		g, err := gemini.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Error("Failed to init gemini client", "error", err)
			os.Exit(1)
		}
		generator = g
		logger.Log.Info("Gemini summary generator ready", "model", g.Model())
	} else {
		logger.Log.Warn("Gemini not configured - /ai/summary will be unavailable")
	}

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	matchUC := usecase.NewMatchUsecase(profileRepo, generator)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	recommendationUC := usecase.NewRecommendationUsecase(recommendationRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.SecretKey)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MatchUC:          matchUC,
		ProfileUC:        profileUC,
		RecommendationUC: recommendationUC,
		AuthUC:           authUC,
		Config:           cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
