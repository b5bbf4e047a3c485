package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tourgen/internal/catalog"
	"tourgen/internal/config"
	"tourgen/internal/gigachat"
	"tourgen/internal/logging"
	"tourgen/internal/planner"
	"tourgen/internal/server"
)

var (
	serverEnvFile    string
	serverListenAddr string
	serverLogLevel   string
	serverCatalog    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the tour planner HTTP server",
	Run:   runServer,
}

func init() {
	serverCmd.Flags().StringVar(&serverEnvFile, "env", config.EnvOrDefault("ENV", ".env"), "Path to .env file")
	serverCmd.Flags().StringVar(&serverListenAddr, "addr", "", "Address to listen on (overrides LISTEN_ADDR)")
	serverCmd.Flags().StringVar(&serverLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	serverCmd.Flags().StringVar(&serverCatalog, "catalog", "", "Path to catalog YAML file (overrides CATALOG_PATH)")
}

func runServer(cmd *cobra.Command, args []string) {
	// Missing .env is fine; the environment may be configured directly.
	if err := godotenv.Load(serverEnvFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load %s: %v", serverEnvFile, err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if serverListenAddr != "" {
		cfg.ListenAddr = serverListenAddr
	}
	if serverLogLevel != "" {
		cfg.LogLevel = serverLogLevel
	}
	if serverCatalog != "" {
		cfg.CatalogPath = serverCatalog
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.GigaChat.AuthKey == "" {
		logger.Warn("GIGACHAT_AUTH_KEY is not set; tour generation will fail until it is configured")
	}

	caPEM, err := gigachat.LoadCABundle(cfg.GigaChat.CABundlePath)
	if err != nil {
		logger.Fatal("failed to load CA bundle", zap.String("path", cfg.GigaChat.CABundlePath), zap.Error(err))
	}
	transport, err := gigachat.NewTransport(caPEM, cfg.RequestTimeout)
	if err != nil {
		logger.Fatal("failed to build transport", zap.Error(err))
	}

	tokens := gigachat.NewTokenManager(cfg.GigaChat, transport, logger)
	completions := gigachat.NewClient(cfg.GigaChat, tokens, transport, logger)
	planning := planner.NewService(completions, cfg.CacheTTL, logger)

	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	srv := server.New(cfg, store, planning, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
