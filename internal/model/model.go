package model

type SignupRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	NickName string `json:"nick_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	UserID          string `json:"user_id"`
	NickName        string `json:"nick_name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ScoreRequest struct {
	UserID string `json:"user_id"`
	Score  *int   `json:"score"`
}

type ChallengeRequest struct {
	UserID          string  `json:"user_id"`
	ChallengeDate   string  `json:"challenge_date"`
	StampAir        string  `json:"stamp_air"`
	StampOff        string  `json:"stamp_off"`
	StampPower      string  `json:"stamp_power"`
	StampEfficiency string  `json:"stamp_efficiency"`
	StampEtc        string  `json:"stamp_etc"`
	SaveKwh         float64 `json:"save_kwh"`
}

// UserInfo is the member row as returned to clients, never with credentials.
type UserInfo struct {
	UserID    string `json:"user_id"`
	NickName  string `json:"nick_name"`
	Email     string `json:"email"`
	Score     int    `json:"score"`
	AdminFlag bool   `json:"admin_flag"`
}

func NewUserInfo(m *Member) UserInfo {
	return UserInfo{
		UserID:    m.UserID,
		NickName:  m.NickName,
		Email:     m.Email,
		Score:     m.Score,
		AdminFlag: m.AdminFlag,
	}
}

// DailyPoint and YearlyPoint are the two bucket shapes the dashboard charts
// consume. Daily buckets stay 8-digit date strings; yearly buckets are ints.
type DailyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type YearlyPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// NuclearPlantDetail is a power_plant row annotated with its units and the
// per-unit yearly series.
type NuclearPlantDetail struct {
	PowerPlant
	Units     []string                 `json:"units"`
	PowerData map[string][]YearlyPoint `json:"powerData"`
}

type PlantsResponse struct {
	Plants     []PowerPlant        `json:"plants"`
	PlantUnits map[string][]string `json:"plantUnits"`
}

// PowerData is the nuclear lookup result of /api/power-data: a yearly total
// scaled to an implied hourly average plus a clamped efficiency heuristic.
type PowerData struct {
	Success     bool    `json:"success"`
	Efficiency  float64 `json:"efficiency"`
	PowerOutput float64 `json:"power_output"`
	Source      string  `json:"source"`
	Year        int     `json:"year"`
	Plant       string  `json:"plant"`
}

// RealtimeOutput is the KHNP realtime reading translated to JSON: the
// upstream XML "power" field becomes genOutput.
type RealtimeOutput struct {
	Success   bool    `json:"success"`
	GenName   string  `json:"genName"`
	GenOutput float64 `json:"genOutput"`
	Unit      string  `json:"unit"`
	Timestamp string  `json:"timestamp"`
}

type ChallengeStats struct {
	TotalDays       int     `json:"totalDays"`
	AirCount        int     `json:"airCount"`
	OffCount        int     `json:"offCount"`
	PowerCount      int     `json:"powerCount"`
	EfficiencyCount int     `json:"efficiencyCount"`
	TotalKwh        float64 `json:"totalKwh"`
}
