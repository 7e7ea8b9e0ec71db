package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "ecobin-backend/internal/api/http"
	"ecobin-backend/internal/config"
	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/repository/postgres"
	"ecobin-backend/internal/security"
	"ecobin-backend/internal/service"
	"ecobin-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EcoBin Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Storage Service
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.AccountRepository, tokenManager)
	accountSvc := service.NewAccountService(store.AccountRepository, store.LedgerRepository)
	ledgerSvc := service.NewLedgerService(
		store.LedgerRepository,
		store.AccountRepository,
		store.BinRepository,
		store.RewardRepository,
		store.ChallengeRepository,
		store.NotificationRepository,
		emailSvc,
		cfg.Points,
		cfg.Redemption,
	)
	binSvc := service.NewBinService(store.BinRepository)
	rewardSvc := service.NewRewardService(store.RewardRepository)
	communitySvc := service.NewCommunityService(
		store.AccountRepository,
		store.FriendshipRepository,
		store.TeamRepository,
		store.ChallengeRepository,
		store.PostRepository,
		store.NotificationRepository,
	)
	adminSvc := service.NewAdminService(store.AccountRepository, store.LedgerRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	photoSvc := service.NewPhotoStorageService(mockStorage, cfg.Storage.MaxFileSize, cfg.Storage.AllowedTypes)

	// Build the route table
	router := httpapi.NewRouter(httpapi.RouterDeps{
		TokenManager: tokenManager,
		Auth:         authSvc,
		Account:      accountSvc,
		Ledger:       ledgerSvc,
		Bin:          binSvc,
		Reward:       rewardSvc,
		Community:    communitySvc,
		Admin:        adminSvc,
		Notification: noteSvc,
		Photo:        photoSvc,
		MockStorage:  mockStorage,
	})

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
