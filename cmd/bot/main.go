package main

import (
	"context"
	"log"
	"os"

	"eventbot/internal/adapters/discord"
	"eventbot/internal/config"
	"eventbot/internal/infrastructure/database"
	"eventbot/internal/infrastructure/i18n"
	"eventbot/internal/infrastructure/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migrations failed: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	statsRepo := database.NewUserStatsRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)
	m := metrics.New()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				log.Printf("⚠️ Metrics listener failed: %v", err)
			}
		}()
	}

	bot := discord.NewBot(cfg, eventRepo, statsRepo, translator, m)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
