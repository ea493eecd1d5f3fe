package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/demo"
	"github.com/lecturas-app/lecturas/internal/database/profile"
	"github.com/lecturas-app/lecturas/internal/database/settings"
	"github.com/lecturas-app/lecturas/internal/reports"
	"github.com/lecturas-app/lecturas/internal/scheduler"
)

// RouterConfig carries every dependency the router needs. Using a config
// struct keeps construction explicit and the handlers testable.
type RouterConfig struct {
	Database        *database.Database
	Books           *books.Repository
	Profile         *profile.Repository
	Settings        *settings.Repository
	Reports         *reports.Builder
	SessionManager  *SessionManager
	BackupScheduler *scheduler.BackupScheduler
	DemoMode        *demo.Middleware
	ExportDir       string
	Version         string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}
	if cfg.DemoMode != nil {
		router.Use(cfg.DemoMode.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Books, cfg.Reports, cfg.SessionManager)
	filtersController := NewFiltersController(cfg.Books, cfg.SessionManager)
	exportController := NewExportController(cfg.Books, cfg.SessionManager, cfg.ExportDir)
	profileController := NewProfileController(cfg.Profile)
	backupController := NewBackupController(cfg.Settings, cfg.BackupScheduler)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.List)
		api.POST("/books", booksController.Create)
		api.GET("/books/:id", booksController.Get)
		api.PUT("/books/:id", booksController.Update)
		api.DELETE("/books/:id", booksController.Delete)
		api.GET("/books/:id/report", booksController.Report)

		api.GET("/stats", booksController.Stats)

		api.GET("/filters/options", filtersController.Options)
		if cfg.SessionManager != nil {
			api.PUT("/filters", filtersController.Set)
			api.DELETE("/filters", filtersController.Clear)
		}

		api.GET("/export", exportController.Export)

		api.GET("/profile", profileController.Get)
		api.PUT("/profile", profileController.Update)

		api.GET("/backup", backupController.Status)
		api.POST("/backup/run", backupController.Run)
	}

	return router
}
