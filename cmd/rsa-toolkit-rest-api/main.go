// cmd/rsa-toolkit-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Jesso3/RSA-Encyption/internal/api/rest/v1"
	"github.com/Jesso3/RSA-Encyption/internal/app"
	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/cryptography"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/metrics"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/persistence"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/primesource"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// CONFIG_PATH is optional, defaults and RSA_TOOLKIT_* variables cover every setting
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
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
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db            *gorm.DB
	registry      *prometheus.Registry
	keyService    textbook.KeyService
	cipherService textbook.CipherService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.NewCollector(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics collector: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}
	parser, err := cryptography.NewKeyParser(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key parser: %w", err)
	}
	codec, err := cryptography.NewCodec(log, cfg.Codec.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}
	sampler, err := primesource.NewSampler(log, &cfg.KeyGen)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime sampler: %w", err)
	}
	log.Info("Cryptographic components initialized successfully")

	keyService, err := app.NewKeyService(generator, parser, sampler, keyRepo, collector, &cfg.KeyGen, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}
	cipherService, err := app.NewCipherService(parser, codec, collector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}
	log.Info("Application services initialized successfully")

	return &appDependencies{
		db:            db,
		registry:      registry,
		keyService:    keyService,
		cipherService: cipherService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.keyService,
		deps.cipherService,
		cfg.KeyGen.UpperLimit,
		v1.NewRateLimiter(cfg.RateLimit),
	)
	v1.SetupMetricsRoute(r, deps.registry)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
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
