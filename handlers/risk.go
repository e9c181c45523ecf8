package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

type RiskHandler struct {
	store     *services.Artifacts
	predictor *services.Predictor
}

func NewRiskHandler(store *services.Artifacts, predictor *services.Predictor) *RiskHandler {
	return &RiskHandler{store: store, predictor: predictor}
}

// GetScore runs one live prediction against the loaded risk model.
func (h *RiskHandler) GetScore(c *gin.Context) {
	avgSpeed, err := requireFloat(c, "avg_speed_mph")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tripsPerHour, err := requireFloat(c, "trips_per_hour")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.predictor.Predict(avgSpeed, tripsPerHour)
	if err != nil {
		if errors.Is(err, services.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "xgb_risk.json not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Model predict failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"risk_score": score})
}

// GetTop re-reads the precomputed candidates table from disk on every
// call, so a fresh batch export shows up without a restart. The limit
// is clamped to [1, 200].
func (h *RiskHandler) GetTop(c *gin.Context) {
	limit := ParseCandidateLimit(c)

	path := h.store.CandidatesPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No precomputed candidates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read candidates: %v", err)})
		return
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read candidates: %v", err)})
		return
	}

	if len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = []json.RawMessage{}
	}

	c.JSON(http.StatusOK, records)
}

func requireFloat(c *gin.Context, name string) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, fmt.Errorf("missing required query parameter %s", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", name)
	}
	return v, nil
}
