package main

import (
	"os"

	_ "npc_garage/docs"
	"npc_garage/internal/adapter/http/routes"
	"npc_garage/internal/config"
	"npc_garage/internal/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Garage Analytics API
// @version         1.0
// @description     Financial analytics for the estimates of a repair shop, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("")
		l.Fatal().Err(err).Msg("[config] invalid configuration")
	}

	log := logger.New(cfg.Environment)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(cfg, log); err != nil {
		log.Error().Err(err).Msg("[http] failed to start the application")
		os.Exit(1)
	}
}
