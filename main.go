package main

import (
	"log"
	"net/http"

	"scrapshop/internal/api"
	"scrapshop/internal/config"
	"scrapshop/internal/logging"
	"scrapshop/internal/metrics"
	"scrapshop/internal/purchase"
	"scrapshop/internal/webhook"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.GetLogger(cfg.Logs)
	metrics.Setup(cfg.Metrics, logger)

	if cfg.Webhook.URL == "" {
		logger.Warn("DISCORD_WEBHOOK_URL environment variable not set, purchase notifications will not work until it is configured")
	} else {
		logger.Info("Discord webhook configured")
	}
	if cfg.Security.SessionSecret == config.DefaultSessionSecret {
		logger.Warn("SESSION_SECRET is set to the default development value")
	}

	sender := webhook.NewSender(cfg.Webhook, logger)
	processor := purchase.NewProcessor(sender, logger)
	server := api.NewServer(processor, logger)

	logger.Info("Starting The Scrap Shop", "port", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, server.Routes()))
}
