package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/queuely/queuely-api/internal/config"
	dbpkg "github.com/queuely/queuely-api/internal/db"
	"github.com/queuely/queuely-api/internal/logger"
	"github.com/queuely/queuely-api/internal/middleware"
	"github.com/queuely/queuely-api/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatalf("failed to start server: %v", err)
	}
}
