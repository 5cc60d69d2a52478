package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/docs"
	"github.com/suto6/whatsevent/internal/answer"
	"github.com/suto6/whatsevent/internal/config"
	"github.com/suto6/whatsevent/internal/handler"
	"github.com/suto6/whatsevent/internal/llm"
	"github.com/suto6/whatsevent/internal/logger"
	"github.com/suto6/whatsevent/internal/repository"
	"github.com/suto6/whatsevent/internal/repository/memory"
	"github.com/suto6/whatsevent/internal/repository/postgres"
	"github.com/suto6/whatsevent/internal/service"
	"github.com/suto6/whatsevent/internal/whatsapp"
)

// @title WhatsEvent API
// @version 1.0
// @description Event management service with a context-aware chat assistant
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.String("storage_driver", cfg.Service.StorageDriver))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize event repository
	var repo repository.EventRepository
	switch cfg.Service.StorageDriver {
	case "memory":
		repo = memory.NewRepository(log)
	case "postgres":
		client, err := postgres.NewClient(ctx, &cfg.Postgres, log)
		if err != nil {
			log.Fatal("Failed to create PostgreSQL client", zap.Error(err))
		}
		repo = postgres.NewRepository(client, log)
	default:
		log.Fatal("Unknown storage driver", zap.String("driver", cfg.Service.StorageDriver))
	}
	defer func(repo repository.EventRepository) {
		if err := repo.Close(); err != nil {
			log.Error("Failed to close repository", zap.Error(err))
		}
	}(repo)

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Select the answer engine: remote when an API key is configured,
	// the deterministic heuristic engine otherwise.
	var answerer answer.Answerer
	if cfg.OpenAI.APIKey != "" {
		answerer = answer.NewRemote(llm.NewClient(&cfg.OpenAI, log), log)
	} else {
		log.Warn("No OpenAI API key configured, using heuristic answer engine")
		answerer = answer.NewHeuristic()
	}
	log.Info("Answer engine selected", zap.String("source", answerer.Source()))

	if err := os.MkdirAll(cfg.Service.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory", zap.Error(err))
	}

	// Initialize event service
	eventService := service.NewEventService(repo, answerer, log)

	// Initialize WhatsApp gateway
	bot := whatsapp.NewBot(repo, answerer, log)
	sender := whatsapp.NewTwilioSender(&cfg.Twilio, log)

	// Initialize handler
	h := handler.NewHandler(eventService, bot, sender, cfg.Service.UploadDir, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
