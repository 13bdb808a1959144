package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsofts/core/internal/middleware"
	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/modules/auth"
	"github.com/dsofts/core/internal/modules/clientproject"
	"github.com/dsofts/core/internal/modules/contact"
	"github.com/dsofts/core/internal/modules/portfolio"
	"github.com/dsofts/core/internal/modules/services"
	"github.com/dsofts/core/internal/modules/upload"
)

func (a *App) registerRoutes() {
	a.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	a.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "DSofts IT Services API",
			"version":   Version,
			"status":    "running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := a.router.Group("/api")

	authMW := middleware.Auth()
	adminMW := []gin.HandlerFunc{authMW, middleware.RequireRoles(models.RoleAdmin)}
	userMW := []gin.HandlerFunc{authMW, middleware.RequireRoles(models.RoleUser, models.RoleAdmin)}

	auth.NewHandler(a.db).RegisterRoutes(api, authMW)
	portfolio.NewHandler(a.db).RegisterRoutes(api, adminMW...)
	services.NewHandler(a.db).RegisterRoutes(api, adminMW...)
	clientproject.NewHandler(a.db).RegisterRoutes(api, userMW, adminMW)
	contact.NewHandler(a.db).RegisterRoutes(api, adminMW...)

	if store := a.newImageStore(); store != nil {
		upload.NewHandler(store).RegisterRoutes(api, adminMW...)
	}
}
