package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/config"
	dbpkg "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/db"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/logger"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/middleware"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
