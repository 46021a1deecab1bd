package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	patrimonyrepo "golang-family-office/internal/patrimony/repository"
	patrimonysvc "golang-family-office/internal/patrimony/service"
	"golang-family-office/internal/worker/config"
	"golang-family-office/internal/worker/delivery/consumer"
	"golang-family-office/internal/worker/service"
	"golang-family-office/internal/worker/strategy"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/postgres"
	"golang-family-office/pkg/redis"
	"golang-family-office/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the patrimony worker service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Patrimony Worker Service", logger.Field("name", cfg.App.Name))

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

	// MKSTREAM creates the stream if it doesn't exist
	if err := redisClient.XGroupCreateMkStream(context.Background(), common.RedisStreamPatrimonyTasks, common.RedisStreamGroup, "0").Err(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
		}
	}

	var notifier telegram.Notifier = telegram.NopNotifier{}
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	familyRepo := patrimonyrepo.NewFamilyRepository(db.DB)
	assetRepo := patrimonyrepo.NewAssetRepository(db.DB)
	alertRepo := patrimonyrepo.NewAlertRepository(db.DB)
	quoteRepo := patrimonyrepo.NewQuoteHistoryRepository(db.DB)
	jobLogRepo := patrimonyrepo.NewJobLogRepository(db.DB)
	priceRepo := patrimonyrepo.NewBrapiRepository(&cfg.Quotes, appLogger)

	// Initialize shared services
	valuationSvc := patrimonysvc.NewValuationService(&cfg.Valuation, appLogger, redisClient, quoteRepo)
	alertSvc := patrimonysvc.NewAlertService(appLogger, familyRepo, alertRepo, valuationSvc, notifier)

	// Initialize strategies
	strategies := []strategy.TaskExecutionStrategy{
		strategy.NewQuoteRefreshStrategy(appLogger, familyRepo, assetRepo, priceRepo, quoteRepo, valuationSvc),
		strategy.NewAlertCheckStrategy(appLogger, familyRepo, alertSvc),
		strategy.NewCleanupStrategy(appLogger, alertRepo, quoteRepo, jobLogRepo, cfg.Worker.RetentionDays),
	}

	workerSvc := service.NewWorkerService(redisClient.Client, jobLogRepo, appLogger, strategies)
	schedulerSvc, err := service.NewSchedulerService(cfg, redisClient.Client, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize scheduler", logger.ErrorField(err))
	}

	go schedulerSvc.Start(ctx)

	redisConsumer := consumer.NewRedisConsumer(cfg, workerSvc, appLogger)
	redisConsumer.Start(ctx)

	appLogger.Info("Worker service started. Waiting for tasks...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker service...")
	cancel()
	redisConsumer.Stop()
	appLogger.Info("Worker service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "worker-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-worker.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing worker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
