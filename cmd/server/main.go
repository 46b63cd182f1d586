package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rr-exchange.backend/internal/config"
	"rr-exchange.backend/internal/infrastructure/identity"
	"rr-exchange.backend/internal/infrastructure/jobs"
	"rr-exchange.backend/internal/infrastructure/notify"
	"rr-exchange.backend/internal/infrastructure/repositories"
	"rr-exchange.backend/internal/interfaces/http/handlers"
	"rr-exchange.backend/internal/interfaces/http/middleware"
	"rr-exchange.backend/internal/usecases"
	"rr-exchange.backend/pkg/jwt"
	"rr-exchange.backend/pkg/logger"
	"rr-exchange.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	tradeRepo := repositories.NewTradeRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize channel notifier
	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Telegram.BotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChannelID)
		if err != nil {
			log.Printf("⚠️ Telegram notifier unavailable: %v (channel notifications disabled)", err)
		} else {
			notifier = tg
			log.Println("✅ Telegram channel notifications enabled")
		}
	}

	// Initialize identity provider verifier
	verifier := identity.NewSharedSecretVerifier(cfg.Provider.Secret)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(accountRepo, verifier, jwtService)
	accountUsecase := usecases.NewAccountUsecase(accountRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, accountRepo)
	settlementUsecase := usecases.NewSettlementUsecase(orderRepo, accountRepo, tradeRepo, uow)
	tradeUsecase := usecases.NewTradeUsecase(tradeRepo)
	depositUsecase := usecases.NewDepositUsecase(depositRepo, accountRepo, uow, notifier)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, accountRepo, uow, notifier)
	adminUsecase := usecases.NewAdminUsecase(accountRepo, orderRepo, tradeRepo, depositRepo, verificationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase, settlementUsecase)
	tradeHandler := handlers.NewTradeHandler(tradeUsecase)
	depositHandler := handlers.NewDepositHandler(depositUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, depositUsecase, verificationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsJob := jobs.NewMarketStatsJob(orderRepo, depositRepo, verificationRepo)
	go statsJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		accountHandler:      accountHandler,
		orderHandler:        orderHandler,
		tradeHandler:        tradeHandler,
		depositHandler:      depositHandler,
		verificationHandler: verificationHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		statsJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 RR Exchange Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
