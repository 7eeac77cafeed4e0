package main

import (
	"go.uber.org/zap"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/config"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/render"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/server/handlers"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/server/router"
	"github.com/HowardChu-bme/Taxi-Receipt/internal/session"
	"github.com/HowardChu-bme/Taxi-Receipt/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	sessions, err := session.NewManager(cfg.SessionTTL(), cfg.Session.SweepSpec, logger)
	if err != nil {
		logger.Fatal("session manager", zap.Error(err))
	}
	defer sessions.Stop()

	engine := &render.ChromeEngine{Timeout: cfg.ChromeTimeout()}
	h := handlers.New(cfg, sessions, engine, logger)
	r := router.New(h, cfg.Upload.MaxBytes, logger)

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
