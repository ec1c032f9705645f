package main

import (
	"flag"
	"log/slog"
	"os"

	"power-dashboard/internal/config"
	"power-dashboard/internal/handler"
	"power-dashboard/internal/logger"
	"power-dashboard/internal/middleware"
	"power-dashboard/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
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

	authSvc := service.NewAuthService(db)
	plantSvc := service.NewPlantService(db)
	genSvc := service.NewGenerationService(db)
	challengeSvc := service.NewChallengeService(db)
	alertSvc := service.NewAlertService(db)
	khnpSvc := service.NewKHNPService(cfg.KHNP.BaseURL, cfg.KHNP.ServiceKey)

	jwtSecret := []byte(cfg.Auth.JWTSecret)
	authH := handler.NewAuthHandler(authSvc, jwtSecret)
	plantH := handler.NewPlantHandler(plantSvc)
	genH := handler.NewGenerationHandler(genSvc)
	challengeH := handler.NewChallengeHandler(challengeSvc)
	alertH := handler.NewAlertHandler(alertSvc)
	khnpH := handler.NewKHNPHandler(khnpSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.PUT("/update-profile", authH.UpdateProfile)
	r.POST("/update-score", authH.UpdateScore)
	r.GET("/get-score", authH.GetScore)

	api := r.Group("/api")
	api.GET("/plants", plantH.List)
	api.GET("/power-data", plantH.PowerData)
	api.GET("/nuclear/full", plantH.NuclearFull)
	api.GET("/debug/all-plants", plantH.DebugCounts)
	api.GET("/education", plantH.Education)

	api.GET("/thermal/power", genH.ThermalHourly)
	api.GET("/thermal/daily-power", genH.ThermalDaily)
	api.GET("/thermal/yearly-power", genH.ThermalYearly)
	api.GET("/solar/power", genH.SolarHourly)
	api.GET("/solar/daily-power", genH.SolarDaily)
	api.GET("/solar/yearly-power", genH.SolarYearly)
	api.GET("/wind/power", genH.WindHourly)
	api.GET("/wind/daily-power", genH.WindDaily)
	api.GET("/wind/yearly-power", genH.WindYearly)
	api.GET("/hydro/daily-power", genH.HydroDaily)
	api.GET("/hydro/khnp-yearly", genH.HydroYearly)

	api.GET("/alerts", alertH.List)
	api.GET("/khnp/realtime-json", khnpH.Realtime)

	api.GET("/challenge/:userId", challengeH.List)
	api.POST("/challenge", challengeH.Upsert)
	api.DELETE("/challenge/:userId/:date", challengeH.Delete)
	api.GET("/challenge-stats/:userId", challengeH.Stats)

	api.GET("/me", middleware.JWTAuth(jwtSecret), authH.Me)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
