// dbinit creates the dashboard schema in an empty database. The generation
// fact and reference tables are loaded by external pipelines; this only sets
// up the structures the server expects.
package main

import (
	"flag"
	"log/slog"
	"os"

	"power-dashboard/internal/config"
	"power-dashboard/internal/logger"
	"power-dashboard/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	err = db.AutoMigrate(
		&model.Member{},
		&model.ChallengeEntry{},
		&model.PowerPlant{},
		&model.NuclearUnitGeneration{},
		&model.ThermalHourlyGeneration{},
		&model.SolarHourlyGeneration{},
		&model.WindHourlyGeneration{},
		&model.HydroDailyGeneration{},
		&model.HydroYearlyGeneration{},
		&model.Alert{},
		&model.Education{},
	)
	if err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	slog.Info("schema ready", "db", cfg.Database.Name)
}
