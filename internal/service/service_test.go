package service

import (
	"testing"

	"power-dashboard/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store with the full schema. A single
// connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func floatPtr(v float64) *float64 { return &v }
