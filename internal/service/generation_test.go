package service

import (
	"context"
	"testing"

	"power-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGeneration(t *testing.T, svc *GenerationService) {
	t.Helper()
	db := svc.db

	thermal := []model.ThermalHourlyGeneration{
		{UnitName: "1", GenDate: "20230101", GenHour: 1, EnergyMwh: 10},
		{UnitName: "1", GenDate: "20230101", GenHour: 2, EnergyMwh: 20},
		{UnitName: "1", GenDate: "20240101", GenHour: 1, EnergyMwh: 5},
		{UnitName: "", GenDate: "20230101", GenHour: 3, EnergyMwh: 99}, // skipped
	}
	for _, r := range thermal {
		require.NoError(t, db.Create(&r).Error)
	}

	solar := []model.SolarHourlyGeneration{
		{PlantName: "SolarA", GenDate: "20230101", GenHour: 12, EnergyKwh: 600},
		{PlantName: "SolarA", GenDate: "20230101", GenHour: 13, EnergyKwh: 400},
	}
	for _, r := range solar {
		require.NoError(t, db.Create(&r).Error)
	}

	hydroDaily := []model.HydroDailyGeneration{
		{DamName: "Soyang", ObsDate: "20230101", CumulativeEnergy: 123.4},
		{DamName: "Soyang", ObsDate: "20230102", CumulativeEnergy: 130.1},
	}
	for _, r := range hydroDaily {
		require.NoError(t, db.Create(&r).Error)
	}

	hydroYearly := []model.HydroYearlyGeneration{
		{PlantName: "Chuncheon", Year: 2022, EnergyMw: 300},
		{PlantName: "Chuncheon", Year: 2021, EnergyMw: 280},
	}
	for _, r := range hydroYearly {
		require.NoError(t, db.Create(&r).Error)
	}
}

func TestThermalHourlyMatrix(t *testing.T) {
	svc := NewGenerationService(newTestDB(t))
	seedGeneration(t, svc)

	data, err := svc.ThermalHourly(context.Background())
	require.NoError(t, err)

	require.Contains(t, data, "1")
	assert.Equal(t, 10.0, data["1"]["20230101"][1])
	assert.Equal(t, 20.0, data["1"]["20230101"][2])
	assert.NotContains(t, data, "", "rows without a unit are skipped")
}

func TestThermalDailyAndYearly(t *testing.T) {
	svc := NewGenerationService(newTestDB(t))
	seedGeneration(t, svc)
	ctx := context.Background()

	daily, err := svc.ThermalDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.DailyPoint{
		{Date: "20230101", Value: 30},
		{Date: "20240101", Value: 5},
	}, daily["1"])

	yearly, err := svc.ThermalYearly(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.YearlyPoint{
		{Year: 2023, Value: 30},
		{Year: 2024, Value: 5},
	}, yearly["1"])
}

func TestSolarConvertsKwh(t *testing.T) {
	svc := NewGenerationService(newTestDB(t))
	seedGeneration(t, svc)
	ctx := context.Background()

	// Hourly view stays in source kWh.
	hourly, err := svc.SolarHourly(ctx)
	require.NoError(t, err)
	assert.Equal(t, 600.0, hourly["SolarA"]["20230101"][12])

	// Daily and yearly views convert to MWh: 1000 kWh -> 1.0.
	daily, err := svc.SolarDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, daily["SolarA"][0].Value)

	yearly, err := svc.SolarYearly(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, yearly["SolarA"][0].Value, 1e-9)
}

func TestHydroDaily(t *testing.T) {
	svc := NewGenerationService(newTestDB(t))
	seedGeneration(t, svc)

	data, err := svc.HydroDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 123.4, data["Soyang"]["20230101"])
	assert.Equal(t, 130.1, data["Soyang"]["20230102"])
}

func TestHydroYearlySorted(t *testing.T) {
	svc := NewGenerationService(newTestDB(t))
	seedGeneration(t, svc)

	data, err := svc.HydroYearly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.YearlyPoint{
		{Year: 2021, Value: 280},
		{Year: 2022, Value: 300},
	}, data["Chuncheon"])
}
