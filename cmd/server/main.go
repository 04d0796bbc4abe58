package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/adilg123/huffpack/internal/api"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New(cfg.LogPrefix)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	api.SetupRoutes(router, api.NewHandler(cfg, logg))

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s (env=%s, max file size=%d bytes)", addr, cfg.Environment, cfg.MaxFileSize)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
