package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/altoshop/catalog-service/config"
	"github.com/altoshop/catalog-service/internal/cache"
	"github.com/altoshop/catalog-service/internal/database"

	catH "github.com/altoshop/catalog-service/internal/category/handler"
	catRepoPkg "github.com/altoshop/catalog-service/internal/category/repository"
	catUCPkg "github.com/altoshop/catalog-service/internal/category/usecase"

	schemaH "github.com/altoshop/catalog-service/internal/schema/handler"
	schemaRepoPkg "github.com/altoshop/catalog-service/internal/schema/repository"
	schemaUCPkg "github.com/altoshop/catalog-service/internal/schema/usecase"

	prodH "github.com/altoshop/catalog-service/internal/product/handler"
	prodRepoPkg "github.com/altoshop/catalog-service/internal/product/repository"
	prodUCPkg "github.com/altoshop/catalog-service/internal/product/usecase"

	userH "github.com/altoshop/catalog-service/internal/user/handler"
	userRepoPkg "github.com/altoshop/catalog-service/internal/user/repository"
	userUCPkg "github.com/altoshop/catalog-service/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.InitSchema(db); err != nil {
		appLogger.Fatal("Could not initialize database schema", zap.Error(err))
	}
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Cache
	// Redis being down is not fatal: the usecases treat cache errors as soft
	// failures, so an in-memory cache keeps the service serving.
	var store cache.Cache
	redisCache, err := cache.NewRedis(&cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, using in-memory cache", zap.Error(err))
		store = cache.NewMemory()
	} else {
		defer redisCache.Close()
		store = redisCache
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	schemaRepo := schemaRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	userRepo := userRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	schemaUC := schemaUCPkg.NewSchemaUseCase(schemaRepo, store, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, store, cfg.Cache.CategoriesTTL, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, schemaUC, store, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)

	// 7. Initialize Handlers and Routes
	schemaHandler := schemaH.NewSchemaHandler(schemaUC, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	userHandler := userH.NewUserHandler(userUC, appLogger)

	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	storefront := router.Group("/")
	catHandler.RegisterStorefrontRoutes(storefront)
	prodHandler.RegisterStorefrontRoutes(storefront)
	userHandler.RegisterRoutes(storefront)

	admin := router.Group("/admin")
	schemaHandler.RegisterRoutes(admin)
	catHandler.RegisterAdminRoutes(admin)
	prodHandler.RegisterAdminRoutes(admin)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: corsHandler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Encoding = cfg.Logger.Encoding
	if level, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
