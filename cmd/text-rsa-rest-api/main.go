// cmd/text-rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/text-rsa/internal/api/rest/v1"
	"github.com/MGTheTrain/text-rsa/internal/app"
	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.LoadRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.store.Close(); err != nil {
			log.Error("Failed to close message store: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	textRSA         cryptoalg.TextRSAProcessor
	messageEncrypt  messages.MessageEncryptService
	messageDecrypt  messages.MessageDecryptService
	messageMetadata messages.MessageMetadataService
	store           io.Closer
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	messageRepo, store, err := persistence.NewMessageRepository(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}

	textRSA, err := cryptography.NewTextRSAProcessor(cfg.Cipher, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create text RSA processor: %w", err)
	}

	encryptService, err := app.NewMessageEncryptService(messageRepo, textRSA, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create message encrypt service: %w", err)
	}

	decryptService, err := app.NewMessageDecryptService(messageRepo, textRSA, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create message decrypt service: %w", err)
	}

	metadataService, err := app.NewMessageMetadataService(messageRepo, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create message metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		textRSA:         textRSA,
		messageEncrypt:  encryptService,
		messageDecrypt:  decryptService,
		messageMetadata: metadataService,
		store:           store,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.textRSA, deps.messageEncrypt, deps.messageDecrypt, deps.messageMetadata)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
