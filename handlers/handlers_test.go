package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

// newTestRouter loads artifacts from dir and wires the full route set
// the way cmd/api does.
func newTestRouter(dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := services.LoadArtifacts(dir)
	predictor := services.NewPredictor(store.Model, store.ModelMeta)

	router := gin.New()

	healthHandler := NewHealthHandler(store, []string{"*"})
	forecastHandler := NewForecastHandler(store)
	riskHandler := NewRiskHandler(store, predictor)
	hotspotsHandler := NewHotspotsHandler(store)
	survivalHandler := NewSurvivalHandler(store)

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/routes", forecastHandler.ListRoutes)
	router.GET("/forecast/:route_id", forecastHandler.GetByRoute)
	router.GET("/risk/score", riskHandler.GetScore)
	router.GET("/risk/top", riskHandler.GetTop)
	router.GET("/hotspots.geojson", hotspotsHandler.GetHotspots)
	router.GET("/survival/km", survivalHandler.GetKM)
	router.GET("/survival/cox_summary", survivalHandler.GetCoxSummary)

	return router
}

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func doGET(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
