package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/object_dto/internal/adapters/database/memory"
	"github.com/SscSPs/object_dto/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	"github.com/SscSPs/object_dto/internal/core/services"
	"github.com/SscSPs/object_dto/internal/handlers"
	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/internal/platform/config"
	"github.com/SscSPs/object_dto/pkg/database"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
)

// @title Object DTO API
// @version 1.0
// @description Users and accounts API whose request and response bodies go through the object DTO mapper.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mapperOpts := []objectdto.Option{objectdto.WithLogger(logger)}
	if cfg.MapperAcceptZeroValues {
		mapperOpts = append(mapperOpts, objectdto.WithAcceptZeroValues())
	}
	mapper := objectdto.New(mapperOpts...)

	var repos *portsrepo.RepositoryProvider
	if cfg.UsesDatabase() {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Info("Using in-memory repositories")
		repos = memory.NewRepositoryProvider()
	}

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, mapper); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
