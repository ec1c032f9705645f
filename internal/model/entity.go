package model

import "time"

// Plant types stored in power_plant.plant_type.
const (
	PlantTypeNuclear = "nuclear"
	PlantTypeThermal = "thermal"
	PlantTypeSolar   = "solar"
	PlantTypeWind    = "wind"
	PlantTypeHydro   = "hydro"
)

// Stamp markers for daily challenge entries.
const (
	StampDone   = "O"
	StampMissed = "X"
)

type Member struct {
	UserID    string `gorm:"column:user_id;primaryKey" json:"user_id"`
	NickName  string `gorm:"column:nick_name" json:"nick_name"`
	Password  string `gorm:"column:pass" json:"-"`
	Email     string `gorm:"column:email;uniqueIndex" json:"email"`
	Score     int    `gorm:"column:score" json:"score"`
	AdminFlag bool   `gorm:"column:admin_flag" json:"admin_flag"`
}

// ChallengeEntry is one user's stamps for one calendar day. The composite key
// makes the upsert collide on (user, date) regardless of submission order.
type ChallengeEntry struct {
	UserID          string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	ChallengeDate   string    `gorm:"column:challenge_date;primaryKey" json:"challenge_date"`
	StampAir        string    `gorm:"column:stamp_air" json:"stamp_air"`
	StampOff        string    `gorm:"column:stamp_off" json:"stamp_off"`
	StampPower      string    `gorm:"column:stamp_power" json:"stamp_power"`
	StampEfficiency string    `gorm:"column:stamp_efficiency" json:"stamp_efficiency"`
	StampEtc        string    `gorm:"column:stamp_etc" json:"stamp_etc"`
	SaveKwh         float64   `gorm:"column:save_kwh" json:"save_kwh"`
	UpdateAt        time.Time `gorm:"column:update_at" json:"update_at"`
}

type PowerPlant struct {
	PlantID   int      `gorm:"column:plant_id;primaryKey" json:"plant_id"`
	PlantName string   `gorm:"column:plant_name" json:"plant_name"`
	PlantType string   `gorm:"column:plant_type" json:"plant_type"`
	Capacity  float64  `gorm:"column:capacity" json:"capacity"`
	Latitude  *float64 `gorm:"column:latitude" json:"latitude"`
	Longitude *float64 `gorm:"column:longitude" json:"longitude"`
	Adress    string   `gorm:"column:adress" json:"adress"`
	Business  string   `gorm:"column:business" json:"business"`
	Remark    string   `gorm:"column:remark" json:"remark"`
}

// NuclearUnitGeneration is a yearly fact per (plant, unit).
type NuclearUnitGeneration struct {
	PlantName string  `gorm:"column:plant_name"`
	UnitName  string  `gorm:"column:unit_name"`
	Year      int     `gorm:"column:year"`
	EnergyMwh float64 `gorm:"column:energy_mwh"`
}

// ThermalHourlyGeneration is an hourly fact per unit; gen_date is YYYYMMDD.
type ThermalHourlyGeneration struct {
	UnitName  string  `gorm:"column:unit_name"`
	GenDate   string  `gorm:"column:gen_date"`
	GenHour   int     `gorm:"column:gen_hour"`
	EnergyMwh float64 `gorm:"column:energy_mwh"`
}

// SolarHourlyGeneration stores kWh; aggregation converts to MWh.
type SolarHourlyGeneration struct {
	PlantName string  `gorm:"column:plant_name"`
	GenDate   string  `gorm:"column:gen_date"`
	GenHour   int     `gorm:"column:gen_hour"`
	EnergyKwh float64 `gorm:"column:energy_kwh"`
}

type WindHourlyGeneration struct {
	PlantName string  `gorm:"column:plant_name"`
	GenDate   string  `gorm:"column:gen_date"`
	GenHour   int     `gorm:"column:gen_hour"`
	EnergyMwh float64 `gorm:"column:energy_mwh"`
}

// HydroDailyGeneration is a per-dam daily cumulative figure.
type HydroDailyGeneration struct {
	DamName          string  `gorm:"column:dam_name"`
	ObsDate          string  `gorm:"column:obs_date"`
	CumulativeEnergy float64 `gorm:"column:cumulative_energy"`
}

type HydroYearlyGeneration struct {
	PlantName string  `gorm:"column:plant_name"`
	Year      int     `gorm:"column:year"`
	EnergyMw  float64 `gorm:"column:energy_mw"`
}

type Alert struct {
	ID         int    `gorm:"column:id;primaryKey" json:"id"`
	GenType    string `gorm:"column:gen_type" json:"gen_type"`
	PlantName  string `gorm:"column:plant_name" json:"plant_name"`
	AlertLevel int    `gorm:"column:alert_level" json:"alert_level"`
}

type Education struct {
	ID       int    `gorm:"column:id;primaryKey" json:"id"`
	Title    string `gorm:"column:title" json:"title"`
	Content  string `gorm:"column:content" json:"content"`
	Category string `gorm:"column:category" json:"category"`
}

func (Member) TableName() string                  { return "member" }
func (ChallengeEntry) TableName() string          { return "member_challenge" }
func (PowerPlant) TableName() string              { return "power_plant" }
func (NuclearUnitGeneration) TableName() string   { return "nuclear_unit_generation" }
func (ThermalHourlyGeneration) TableName() string { return "thermal_hourly_generation" }
func (SolarHourlyGeneration) TableName() string   { return "solar_hourly_generation" }
func (WindHourlyGeneration) TableName() string    { return "wind_hourly_generation" }
func (HydroDailyGeneration) TableName() string    { return "hydro_daily_generation" }
func (HydroYearlyGeneration) TableName() string   { return "hydro_yearly_generation" }
func (Alert) TableName() string                   { return "alert" }
func (Education) TableName() string               { return "education" }
