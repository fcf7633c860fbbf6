package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/adapters/database/mongodb"
	openaiadapter "github.com/Max-Ceph/zaman-hacknu/internal/adapters/llm/openai"
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/handlers"
	"github.com/Max-Ceph/zaman-hacknu/internal/knowledge"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/Max-Ceph/zaman-hacknu/pkg/config"
	"github.com/Max-Ceph/zaman-hacknu/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewMongoDatabase(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if cerr := database.CloseMongo(ctx, db); cerr != nil {
			logger.Error("Error closing MongoDB connection", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("MongoDB connection established", slog.String("database", cfg.MongoDatabase))

	// Knowledge bases: a missing snapshot degrades to an empty corpus so the
	// chat endpoint still answers (with its fallback knowledge context).
	store := knowledge.LoadStore(cfg.KnowledgeBaseRU, cfg.KnowledgeBaseKK, logger)

	llm := openaiadapter.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel, cfg.EmbeddingModel, cfg.MaxTokens, cfg.Temperature)

	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)
	txnRepo := mongodb.NewTransactionRepository(db, logger)
	chatRepo := mongodb.NewChatHistoryRepository(db)

	languageService := services.NewLanguageService()
	analyticsService := services.NewAnalyticsService(txnRepo)
	retrievalService := services.NewRetrievalService()
	promptBuilder := services.NewPromptBuilder(cfg.ReferenceTimeZone)

	container := &portssvc.ServiceContainer{
		User:        services.NewUserService(userRepo),
		Account:     services.NewAccountService(accountRepo),
		Goal:        services.NewGoalService(goalRepo),
		Transaction: services.NewTransactionService(txnRepo),
		Analytics:   analyticsService,
		Chat: services.NewChatService(
			languageService,
			analyticsService,
			retrievalService,
			promptBuilder,
			store,
			llm,
			llm,
			userRepo,
			accountRepo,
			goalRepo,
			chatRepo,
			cfg.BankURL,
		),
		Transcriber: llm,
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// The web client sends the session cookie cross-origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "https://app.zamanbank.kz"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, newIPLimiter("5-M"), newIPLimiter("20-M"))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newIPLimiter builds an in-memory per-IP limiter from a formatted rate
// such as "5-M" (5 requests per minute).
func newIPLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		// Rates are compile-time constants; a bad one is a programming error.
		panic(err)
	}
	return limiter.New(memory.NewStore(), rate)
}
