package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/config"
	"github.com/dsofts/core/internal/database"
	"github.com/dsofts/core/internal/middleware"
	"github.com/dsofts/core/internal/modules/upload"
	"github.com/dsofts/core/internal/pkg/jwt"
)

// Version is the reported API version.
const Version = "1.0.0"

// App owns the HTTP router and its dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// New loads configuration, connects the database and wires every route.
func New(logger *zap.Logger, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	} else {
		logger.Warn("jwt secret not configured, using the built-in default")
	}
	jwt.SetLifetime(cfg.TokenLifetime())

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, err
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(corsMiddleware(cfg))

	a := &App{cfg: cfg, router: router, db: db, logger: logger}
	a.registerRoutes()
	return a, nil
}

// Addr returns the listen address.
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.cfg.Port)
}

// Router returns the configured gin engine.
func (a *App) Router() *gin.Engine {
	return a.router
}

// newImageStore builds the upload store when S3 is configured; routes stay
// unregistered otherwise.
func (a *App) newImageStore() *upload.Store {
	if !a.cfg.S3.Configured() {
		a.logger.Warn("image store not configured, upload routes disabled")
		return nil
	}
	store, err := upload.NewStore(context.Background(), a.cfg.S3)
	if err != nil {
		a.logger.Error("image store init failed, upload routes disabled", zap.Error(err))
		return nil
	}
	return store
}
