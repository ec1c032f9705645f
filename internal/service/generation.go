package service

import (
	"context"
	"fmt"
	"strconv"

	"power-dashboard/internal/aggregate"
	"power-dashboard/internal/model"

	"gorm.io/gorm"
)

// kWh-denominated sources are converted to MWh before aggregation.
const kwhToMwh = 1.0 / 1000

// dailyRound matches the dashboard's 2-decimal daily views; yearly roll-ups
// stay unrounded.
const dailyRound = 2

type GenerationService struct{ db *gorm.DB }

func NewGenerationService(db *gorm.DB) *GenerationService { return &GenerationService{db: db} }

// HourlyMatrix is the raw per-hour reshape the /power endpoints serve:
// group -> date -> hour -> value, no summing, source-native units.
type HourlyMatrix map[string]map[string]map[int]float64

type hourlyRow struct {
	group string
	date  string
	hour  int
	value float64
}

func (s *GenerationService) ThermalHourly(ctx context.Context) (HourlyMatrix, error) {
	recs, err := s.thermalRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]hourlyRow, len(recs))
	for i, r := range recs {
		rows[i] = hourlyRow{group: r.UnitName, date: r.GenDate, hour: r.GenHour, value: r.EnergyMwh}
	}
	return buildMatrix(rows), nil
}

func (s *GenerationService) SolarHourly(ctx context.Context) (HourlyMatrix, error) {
	recs, err := s.solarRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]hourlyRow, len(recs))
	for i, r := range recs {
		rows[i] = hourlyRow{group: r.PlantName, date: r.GenDate, hour: r.GenHour, value: r.EnergyKwh}
	}
	return buildMatrix(rows), nil
}

func (s *GenerationService) WindHourly(ctx context.Context) (HourlyMatrix, error) {
	recs, err := s.windRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]hourlyRow, len(recs))
	for i, r := range recs {
		rows[i] = hourlyRow{group: r.PlantName, date: r.GenDate, hour: r.GenHour, value: r.EnergyMwh}
	}
	return buildMatrix(rows), nil
}

func (s *GenerationService) ThermalDaily(ctx context.Context) (map[string][]model.DailyPoint, error) {
	rows, err := s.thermalRows(ctx)
	if err != nil {
		return nil, err
	}
	return dailySeries(rows, 1), nil
}

func (s *GenerationService) SolarDaily(ctx context.Context) (map[string][]model.DailyPoint, error) {
	rows, err := s.solarRows(ctx)
	if err != nil {
		return nil, err
	}
	return dailySeries(rows, kwhToMwh), nil
}

func (s *GenerationService) WindDaily(ctx context.Context) (map[string][]model.DailyPoint, error) {
	rows, err := s.windRows(ctx)
	if err != nil {
		return nil, err
	}
	return dailySeries(rows, 1), nil
}

func (s *GenerationService) ThermalYearly(ctx context.Context) (map[string][]model.YearlyPoint, error) {
	rows, err := s.thermalRows(ctx)
	if err != nil {
		return nil, err
	}
	return yearlySeries(rows, 1), nil
}

func (s *GenerationService) SolarYearly(ctx context.Context) (map[string][]model.YearlyPoint, error) {
	rows, err := s.solarRows(ctx)
	if err != nil {
		return nil, err
	}
	return yearlySeries(rows, kwhToMwh), nil
}

func (s *GenerationService) WindYearly(ctx context.Context) (map[string][]model.YearlyPoint, error) {
	rows, err := s.windRows(ctx)
	if err != nil {
		return nil, err
	}
	return yearlySeries(rows, 1), nil
}

// HydroDaily maps dam -> date -> cumulative figure, one reading per day.
func (s *GenerationService) HydroDaily(ctx context.Context) (map[string]map[string]float64, error) {
	var recs []model.HydroDailyGeneration
	err := s.db.WithContext(ctx).Order("dam_name, obs_date").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query hydro daily generation: %w", err)
	}

	data := make(map[string]map[string]float64)
	for _, r := range recs {
		if r.DamName == "" || r.ObsDate == "" {
			continue
		}
		if data[r.DamName] == nil {
			data[r.DamName] = make(map[string]float64)
		}
		data[r.DamName][r.ObsDate] = r.CumulativeEnergy
	}
	return data, nil
}

// HydroYearly is the utility's per-plant yearly series, already year-grained
// in the store.
func (s *GenerationService) HydroYearly(ctx context.Context) (map[string][]model.YearlyPoint, error) {
	var recs []model.HydroYearlyGeneration
	err := s.db.WithContext(ctx).Order("plant_name, year").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query hydro yearly generation: %w", err)
	}

	rows := make([]aggregate.Row, len(recs))
	for i, r := range recs {
		rows[i] = aggregate.Row{Group: r.PlantName, Date: strconv.Itoa(r.Year), Value: r.EnergyMw}
	}
	return yearlyPoints(aggregate.Fold(rows, aggregate.Options{})), nil
}

// --- record fetches ---

func (s *GenerationService) thermalRecords(ctx context.Context) ([]model.ThermalHourlyGeneration, error) {
	var recs []model.ThermalHourlyGeneration
	err := s.db.WithContext(ctx).Order("unit_name, gen_date, gen_hour").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query thermal generation: %w", err)
	}
	return recs, nil
}

func (s *GenerationService) solarRecords(ctx context.Context) ([]model.SolarHourlyGeneration, error) {
	var recs []model.SolarHourlyGeneration
	err := s.db.WithContext(ctx).Order("plant_name, gen_date, gen_hour").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query solar generation: %w", err)
	}
	return recs, nil
}

func (s *GenerationService) windRecords(ctx context.Context) ([]model.WindHourlyGeneration, error) {
	var recs []model.WindHourlyGeneration
	err := s.db.WithContext(ctx).Order("plant_name, gen_date, gen_hour").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query wind generation: %w", err)
	}
	return recs, nil
}

func (s *GenerationService) thermalRows(ctx context.Context) ([]aggregate.Row, error) {
	recs, err := s.thermalRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]aggregate.Row, len(recs))
	for i, r := range recs {
		rows[i] = aggregate.Row{Group: r.UnitName, Date: r.GenDate, Value: r.EnergyMwh}
	}
	return rows, nil
}

func (s *GenerationService) solarRows(ctx context.Context) ([]aggregate.Row, error) {
	recs, err := s.solarRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]aggregate.Row, len(recs))
	for i, r := range recs {
		rows[i] = aggregate.Row{Group: r.PlantName, Date: r.GenDate, Value: r.EnergyKwh}
	}
	return rows, nil
}

func (s *GenerationService) windRows(ctx context.Context) ([]aggregate.Row, error) {
	recs, err := s.windRecords(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]aggregate.Row, len(recs))
	for i, r := range recs {
		rows[i] = aggregate.Row{Group: r.PlantName, Date: r.GenDate, Value: r.EnergyMwh}
	}
	return rows, nil
}

// --- shaping ---

func buildMatrix(rows []hourlyRow) HourlyMatrix {
	data := make(HourlyMatrix)
	for _, r := range rows {
		if r.group == "" || r.date == "" {
			continue
		}
		if data[r.group] == nil {
			data[r.group] = make(map[string]map[int]float64)
		}
		if data[r.group][r.date] == nil {
			data[r.group][r.date] = make(map[int]float64)
		}
		data[r.group][r.date][r.hour] = r.value
	}
	return data
}

func dailySeries(rows []aggregate.Row, factor float64) map[string][]model.DailyPoint {
	folded := aggregate.Fold(rows, aggregate.Options{Factor: factor, Round: dailyRound})
	out := make(map[string][]model.DailyPoint, len(folded))
	for group, series := range folded {
		pts := make([]model.DailyPoint, len(series))
		for i, p := range series {
			pts[i] = model.DailyPoint{Date: p.Bucket, Value: p.Value}
		}
		out[group] = pts
	}
	return out
}

func yearlySeries(rows []aggregate.Row, factor float64) map[string][]model.YearlyPoint {
	return yearlyPoints(aggregate.Fold(rows, aggregate.Options{Bucket: aggregate.Year, Factor: factor}))
}

func yearlyPoints(folded map[string][]aggregate.Point) map[string][]model.YearlyPoint {
	out := make(map[string][]model.YearlyPoint, len(folded))
	for group, series := range folded {
		pts := make([]model.YearlyPoint, 0, len(series))
		for _, p := range series {
			year, err := strconv.Atoi(p.Bucket)
			if err != nil {
				continue
			}
			pts = append(pts, model.YearlyPoint{Year: year, Value: p.Value})
		}
		out[group] = pts
	}
	return out
}
