package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-family-office/internal/patrimony/config"
	delivery "golang-family-office/internal/patrimony/delivery/http"
	_ "golang-family-office/internal/patrimony/docs"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/postgres"
	"golang-family-office/pkg/redis"
	"golang-family-office/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the patrimony API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Patrimony API Service", logger.Field("name", cfg.App.Name))

	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	var notifier telegram.Notifier = telegram.NopNotifier{}
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	familyRepo := repository.NewFamilyRepository(db.DB)
	assetRepo := repository.NewAssetRepository(db.DB)
	txRepo := repository.NewTransactionRepository(db.DB)
	alertRepo := repository.NewAlertRepository(db.DB)
	quoteRepo := repository.NewQuoteHistoryRepository(db.DB)

	// Initialize services
	valuationSvc := service.NewValuationService(&cfg.Valuation, appLogger, redisClient, quoteRepo)
	portfolioSvc := service.NewPortfolioService(appLogger, familyRepo, valuationSvc)
	assetSvc := service.NewAssetService(appLogger, assetRepo, familyRepo, valuationSvc)
	txSvc := service.NewTransactionService(appLogger, txRepo, assetRepo, valuationSvc)
	riskSvc := service.NewRiskService(appLogger, familyRepo, assetRepo, valuationSvc)
	alertSvc := service.NewAlertService(appLogger, familyRepo, alertRepo, valuationSvc, notifier)
	dashboardSvc := service.NewDashboardService(appLogger, familyRepo, alertRepo, valuationSvc)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	apiV1 := e.Group("/api/v1")

	familiesGroup := apiV1.Group("/families")
	familyHandler := delivery.NewFamilyHandler(portfolioSvc, appLogger)
	familyHandler.RegisterRoutes(familiesGroup)

	dashboardHandler := delivery.NewDashboardHandler(dashboardSvc, riskSvc, alertSvc, appLogger)
	dashboardHandler.RegisterRoutes(familiesGroup)

	assetsGroup := apiV1.Group("/assets")
	assetHandler := delivery.NewAssetHandler(assetSvc, riskSvc, appLogger)
	assetHandler.RegisterRoutes(assetsGroup)

	transactionsGroup := apiV1.Group("/transactions")
	transactionHandler := delivery.NewTransactionHandler(txSvc, appLogger)
	transactionHandler.RegisterRoutes(transactionsGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Family Office Patrimony API
// @version 1.0
// @description Valuation, risk scoring and alerting for household investment portfolios.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
