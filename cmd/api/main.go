package main

import (
	"fmt"
	"log"

	"ace-models-api/config"
	"ace-models-api/handlers"
	"ace-models-api/middleware"
	"ace-models-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load artifacts once; missing ones are reported by /health, not fatal
	store := services.LoadArtifacts(cfg.Artifacts.Dir)
	predictor := services.NewPredictor(store.Model, store.ModelMeta)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(store, cfg.CORS.OriginList())
	forecastHandler := handlers.NewForecastHandler(store)
	riskHandler := handlers.NewRiskHandler(store, predictor)
	hotspotsHandler := handlers.NewHotspotsHandler(store)
	survivalHandler := handlers.NewSurvivalHandler(store)

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/routes", forecastHandler.ListRoutes)
	router.GET("/forecast/:route_id", forecastHandler.GetByRoute)
	router.GET("/risk/score", riskHandler.GetScore)
	router.GET("/risk/top", riskHandler.GetTop)
	router.GET("/hotspots.geojson", hotspotsHandler.GetHotspots)
	router.GET("/survival/km", survivalHandler.GetKM)
	router.GET("/survival/cox_summary", survivalHandler.GetCoxSummary)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s (artifacts dir %s)", addr, cfg.Artifacts.Dir)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
