package service

import (
	"context"
	"testing"

	"power-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNuclear(t *testing.T, svc *PlantService) {
	t.Helper()
	db := svc.db

	require.NoError(t, db.Create(&model.PowerPlant{
		PlantID: 1, PlantName: "Kori", PlantType: model.PlantTypeNuclear,
		Latitude: floatPtr(35.3), Longitude: floatPtr(129.3),
	}).Error)
	require.NoError(t, db.Create(&model.PowerPlant{
		PlantID: 2, PlantName: "Bundang", PlantType: model.PlantTypeThermal,
		Latitude: floatPtr(37.3), Longitude: floatPtr(127.1),
	}).Error)
	require.NoError(t, db.Create(&model.PowerPlant{
		PlantID: 3, PlantName: "NoCoords", PlantType: model.PlantTypeHydro,
	}).Error)

	facts := []model.NuclearUnitGeneration{
		{PlantName: "Kori", UnitName: "#10", Year: 2022, EnergyMwh: 7_000_000},
		{PlantName: "Kori", UnitName: "#2", Year: 2022, EnergyMwh: 6_000_000},
		{PlantName: "Kori", UnitName: "#2", Year: 2021, EnergyMwh: 5_500_000},
	}
	for _, f := range facts {
		require.NoError(t, db.Create(&f).Error)
	}
}

func TestPlantsFiltersAndUnitOrder(t *testing.T) {
	svc := NewPlantService(newTestDB(t))
	seedNuclear(t, svc)

	resp, err := svc.Plants(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Plants, 2, "plants without coordinates are excluded")
	// "#2" sorts before "#10": numeric, not lexicographic.
	assert.Equal(t, []string{"#2", "#10"}, resp.PlantUnits["Kori"])
}

func TestPowerDataHeuristic(t *testing.T) {
	svc := NewPlantService(newTestDB(t))
	seedNuclear(t, svc)
	ctx := context.Background()

	data, err := svc.PowerData(ctx, "Kori#2", 2022)
	require.NoError(t, err)

	hourly := 6_000_000.0 / 8760
	assert.InDelta(t, hourly, data.PowerOutput, 1e-9)
	assert.InDelta(t, hourly/1000*100, data.Efficiency, 1e-9)
	assert.Equal(t, 2022, data.Year)
	assert.Equal(t, "Kori#2", data.Plant)
}

func TestPowerDataClamp(t *testing.T) {
	svc := NewPlantService(newTestDB(t))
	db := svc.db
	ctx := context.Background()

	require.NoError(t, db.Create(&model.PowerPlant{
		PlantID: 1, PlantName: "Kori", PlantType: model.PlantTypeNuclear,
		Latitude: floatPtr(35.3), Longitude: floatPtr(129.3),
	}).Error)
	// Raw efficiency far above 80 and far below 20.
	require.NoError(t, db.Create(&model.NuclearUnitGeneration{
		PlantName: "Kori", UnitName: "#1", Year: 2022, EnergyMwh: 9_000_000,
	}).Error)
	require.NoError(t, db.Create(&model.NuclearUnitGeneration{
		PlantName: "Kori", UnitName: "#1", Year: 2023, EnergyMwh: 100,
	}).Error)

	high, err := svc.PowerData(ctx, "Kori#1", 2022)
	require.NoError(t, err)
	assert.Equal(t, 80.0, high.Efficiency)

	low, err := svc.PowerData(ctx, "Kori#1", 2023)
	require.NoError(t, err)
	assert.Equal(t, 20.0, low.Efficiency)
}

func TestPowerDataNotFound(t *testing.T) {
	svc := NewPlantService(newTestDB(t))
	seedNuclear(t, svc)
	ctx := context.Background()

	// Thermal plant: type lookup rejects it even though the row exists.
	_, err := svc.PowerData(ctx, "Bundang", 2022)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.PowerData(ctx, "Kori#2", 1999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.PowerData(ctx, "#3", 2022)
	assert.ErrorIs(t, err, ErrNotFound, "identifier with no leading name")
}

func TestNuclearFull(t *testing.T) {
	svc := NewPlantService(newTestDB(t))
	seedNuclear(t, svc)

	details, err := svc.NuclearFull(context.Background())
	require.NoError(t, err)

	require.Len(t, details, 1, "only nuclear plants are included")
	d := details[0]
	assert.Equal(t, "Kori", d.PlantName)
	assert.Equal(t, []string{"#2", "#10"}, d.Units)

	series := d.PowerData["#2"]
	require.Len(t, series, 2)
	assert.Equal(t, 2021, series[0].Year, "per-unit series sorted by year")
	assert.Equal(t, 2022, series[1].Year)
}

func TestSplitUnit(t *testing.T) {
	name, unit := splitUnit("Kori#1")
	assert.Equal(t, "Kori", name)
	assert.Equal(t, "#1", unit)

	name, unit = splitUnit("Hanbit")
	assert.Equal(t, "Hanbit", name)
	assert.Equal(t, "", unit)
}
