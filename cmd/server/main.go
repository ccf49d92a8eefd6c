package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/tailordesk/internal/app"
	"github.com/tailordesk/internal/config"
	"github.com/tailordesk/internal/logger"
	"github.com/tailordesk/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("TailorDesk booking tracker")

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}
	defer func() {
		if err := models.CloseDB(); err != nil {
			logger.Warnw("db_close_failed", "error", err)
		}
	}()

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("server failed: %v", err)
	}
}
