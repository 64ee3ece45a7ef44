package main

import (
	"log"
	"time"

	"github.com/Garvit-office/smart-agriguard/internal/app"
	"github.com/Garvit-office/smart-agriguard/internal/bootstrap"
	"github.com/Garvit-office/smart-agriguard/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg.IsProd())
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependencies + routes
	if err := app.BuildApp(r, cfg, logger); err != nil {
		log.Fatal(err)
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger.Named("http"),
	)
}

func newLogger(prod bool) *zap.Logger {
	if prod {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	return logger
}
