package main

import (
	"context"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/cleansweep/cleansweep/config"
	"github.com/cleansweep/cleansweep/internal/database"
	"github.com/cleansweep/cleansweep/internal/migrations"
	"github.com/cleansweep/cleansweep/pkg/logger"
)

func main() {
	downTo := flag.Float64("down", -1, "migrate down to this major version instead of up")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)

	if err := run(cfg, appLogger, *downTo); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Migration failed")
	}
}

func run(cfg *config.Config, appLogger logger.Logger, downTo float64) error {
	if err := database.EnsureDatabaseExists(&cfg.Database); err != nil {
		return err
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	manager := migrations.NewManager(appLogger)

	if downTo >= 0 {
		appLogger.WithField("target", downTo).Info("Migrating down")
		return manager.MigrateDownTo(ctx, db, downTo)
	}

	// A database without a settings table has never been touched: it gets
	// the full schema in one pass instead of replaying every migration.
	var settingsTable *string
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.settings')").Scan(&settingsTable); err != nil {
		return err
	}
	if settingsTable == nil {
		appLogger.Info("Fresh install detected, initializing full schema")
		if err := database.InitializeDatabase(db); err != nil {
			return err
		}
		codeVersion, err := migrations.GetCurrentCodeVersion()
		if err != nil {
			return err
		}
		return manager.SetCurrentDBVersion(ctx, db, codeVersion)
	}

	return manager.RunMigrations(ctx, cfg, db)
}
