package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easynote/config"
	_ "easynote/docs" // Swagger docs
	"easynote/internal/httpserver"
	"easynote/pkg/aiprovider"
	"easynote/pkg/log"
	"easynote/pkg/scope"
	"easynote/pkg/sqlitedb"
)

// @title       EasyNote API
// @description Task management backend with multi-provider AI extraction (Gemini, OpenAI, SiliconFlow, DeepSeek).
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EasyNote...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlitedb.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	if err := sqlitedb.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Shared services
	jwtManager := scope.New(cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenExpireMinutes)*time.Minute)
	resolver := aiprovider.NewResolver(cfg.AI)
	logger.Infof(ctx, "AI default provider: %s", resolver.DefaultProvider())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
		JWTManager:  jwtManager,
		Resolver:    resolver,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
