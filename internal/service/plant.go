package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"power-dashboard/internal/model"

	"gorm.io/gorm"
)

// Nuclear efficiency heuristic: a yearly total spread over the hours of one
// year, measured against a fixed placeholder capacity and clamped to a
// plausible band. Kept bit-for-bit for dashboard compatibility.
const (
	hoursPerYear       = 8760
	assumedCapacityMW  = 1000
	efficiencyFloorPct = 20
	efficiencyCeilPct  = 80
)

type PlantService struct{ db *gorm.DB }

func NewPlantService(db *gorm.DB) *PlantService { return &PlantService{db: db} }

// Plants lists every plant with known coordinates, plus the unit names per
// nuclear plant sorted by their embedded number.
func (s *PlantService) Plants(ctx context.Context) (*model.PlantsResponse, error) {
	var plants []model.PowerPlant
	err := s.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&plants).Error
	if err != nil {
		return nil, fmt.Errorf("query plants: %w", err)
	}

	units, err := s.plantUnits(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PlantsResponse{Plants: plants, PlantUnits: units}, nil
}

// NuclearFull returns every nuclear plant annotated with its units and the
// per-unit yearly generation series, sorted by year.
func (s *PlantService) NuclearFull(ctx context.Context) ([]model.NuclearPlantDetail, error) {
	var plants []model.PowerPlant
	err := s.db.WithContext(ctx).
		Where("plant_type = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", model.PlantTypeNuclear).
		Find(&plants).Error
	if err != nil {
		return nil, fmt.Errorf("query nuclear plants: %w", err)
	}

	var facts []model.NuclearUnitGeneration
	err = s.db.WithContext(ctx).
		Order("plant_name, unit_name, year").
		Find(&facts).Error
	if err != nil {
		return nil, fmt.Errorf("query nuclear generation: %w", err)
	}

	type unitSeries map[string][]model.YearlyPoint
	byPlant := make(map[string]unitSeries)
	unitsByPlant := make(map[string][]string)
	for _, f := range facts {
		if byPlant[f.PlantName] == nil {
			byPlant[f.PlantName] = make(unitSeries)
		}
		byPlant[f.PlantName][f.UnitName] = append(byPlant[f.PlantName][f.UnitName],
			model.YearlyPoint{Year: f.Year, Value: f.EnergyMwh})
		if !contains(unitsByPlant[f.PlantName], f.UnitName) {
			unitsByPlant[f.PlantName] = append(unitsByPlant[f.PlantName], f.UnitName)
		}
	}

	out := make([]model.NuclearPlantDetail, 0, len(plants))
	for _, p := range plants {
		series := byPlant[p.PlantName]
		if series == nil {
			series = make(unitSeries)
		}
		for unit := range series {
			pts := series[unit]
			sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		}
		units := unitsByPlant[p.PlantName]
		if units == nil {
			units = []string{}
		}
		sortUnits(units)
		out = append(out, model.NuclearPlantDetail{
			PowerPlant: p,
			Units:      units,
			PowerData:  series,
		})
	}
	return out, nil
}

// PowerData resolves a nuclear plant identifier that may embed a "#N" unit
// suffix and scales its yearly generation into an implied hourly average.
// The plant must exist in power_plant with the nuclear type; name-substring
// classification is gone.
func (s *PlantService) PowerData(ctx context.Context, plantIdent string, year int) (*model.PowerData, error) {
	name, unit := splitUnit(plantIdent)
	if name == "" {
		return nil, fmt.Errorf("cannot extract a plant name from %q: %w", plantIdent, ErrNotFound)
	}

	var plant model.PowerPlant
	err := s.db.WithContext(ctx).
		Where("plant_name = ? AND plant_type = ?", name, model.PlantTypeNuclear).
		First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no generation data for this plant type: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query plant: %w", err)
	}

	q := s.db.WithContext(ctx).Where("plant_name = ? AND year = ?", name, year)
	if unit != "" {
		q = q.Where("unit_name = ?", unit)
	}
	var fact model.NuclearUnitGeneration
	if err := q.First(&fact).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no generation data for that year: %w", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("query nuclear generation: %w", err)
	}

	hourly := fact.EnergyMwh / hoursPerYear
	efficiency := clamp(hourly/assumedCapacityMW*100, efficiencyFloorPct, efficiencyCeilPct)

	return &model.PowerData{
		Success:     true,
		Efficiency:  efficiency,
		PowerOutput: hourly,
		Source:      "database",
		Year:        year,
		Plant:       plantIdent,
	}, nil
}

// CountsByType returns the number of plants per plant_type.
func (s *PlantService) CountsByType(ctx context.Context) (map[string]int64, error) {
	type typeCount struct {
		PlantType string
		Count     int64
	}
	var rows []typeCount
	err := s.db.WithContext(ctx).Model(&model.PowerPlant{}).
		Select("plant_type, COUNT(*) AS count").
		Group("plant_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count plants: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PlantType] = r.Count
	}
	return counts, nil
}

// Education lists the static education rows, id ascending.
func (s *PlantService) Education(ctx context.Context) ([]model.Education, error) {
	var rows []model.Education
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query education: %w", err)
	}
	return rows, nil
}

func (s *PlantService) plantUnits(ctx context.Context) (map[string][]string, error) {
	var facts []model.NuclearUnitGeneration
	err := s.db.WithContext(ctx).
		Distinct("plant_name", "unit_name").
		Order("plant_name, unit_name").
		Find(&facts).Error
	if err != nil {
		return nil, fmt.Errorf("query plant units: %w", err)
	}

	units := make(map[string][]string)
	for _, f := range facts {
		if !contains(units[f.PlantName], f.UnitName) {
			units[f.PlantName] = append(units[f.PlantName], f.UnitName)
		}
	}
	for name := range units {
		sortUnits(units[name])
	}
	return units, nil
}

// splitUnit separates "Kori#1" into ("Kori", "#1"); the unit part keeps its
// '#' prefix to match unit_name values.
func splitUnit(ident string) (name, unit string) {
	if i := strings.IndexByte(ident, '#'); i >= 0 {
		return strings.TrimSpace(ident[:i]), strings.TrimSpace(ident[i:])
	}
	return strings.TrimSpace(ident), ""
}

var unitNumRe = regexp.MustCompile(`\d+`)

// sortUnits orders unit names by their embedded number ("#2" before "#10").
func sortUnits(units []string) {
	sort.Slice(units, func(i, j int) bool {
		return unitNum(units[i]) < unitNum(units[j])
	})
}

func unitNum(s string) int {
	m := unitNumRe.FindString(s)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
