package main

import (
    "fmt"
    "log"

    "veggieweek/config"
    "veggieweek/routes"
	"veggieweek/utils"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    logger := utils.NewLogger(cfg.Log.Level)

    db, err := config.Connect(cfg)
    if err != nil {
        logger.Fatalf("database: %v", err)
    }

    r := routes.SetupRouter(db, cfg, logger)
    logger.WithField("port", cfg.Server.Port).Info("server starting")
    if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
        logger.Fatalf("server: %v", err)
    }
}
