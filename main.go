package main

import (
	"context"
	"log"

	"gogrubbs/adapters/postgres"
	"gogrubbs/adapters/stats"
	"gogrubbs/app"
	"gogrubbs/domain/grubbs"
	"gogrubbs/internal"
	"gogrubbs/internal/config"
	"gogrubbs/ports"
	"gogrubbs/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	descriptive := stats.NewMontanaDescriptive()
	calc := grubbs.NewCalculator(descriptive, stats.NewGonumQuantile())

	var reports ports.ReportRepositoryPort
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		repo := postgres.NewReportRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("failed to prepare schema: %v", err)
		}
		reports = repo
		logger.Info("report persistence enabled")
	} else {
		logger.Info("DATABASE_URL not set, running without report persistence")
	}

	service := app.NewDetectionService(calc, descriptive, reports, logger)
	server := ui.NewServer(service, calc, reports, cfg.Defaults, logger, cfg.Server.GinMode)

	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
