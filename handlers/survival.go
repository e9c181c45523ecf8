package handlers

import (
	"net/http"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

type SurvivalHandler struct {
	store *services.Artifacts
}

func NewSurvivalHandler(store *services.Artifacts) *SurvivalHandler {
	return &SurvivalHandler{store: store}
}

// GetKM serves the Kaplan-Meier curve sub-section verbatim.
func (h *SurvivalHandler) GetKM(c *gin.Context) {
	if h.store.Survival == nil || len(h.store.Survival.KM) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "KM not available"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.store.Survival.KM)
}

// GetCoxSummary serves the proportional-hazards summary verbatim.
func (h *SurvivalHandler) GetCoxSummary(c *gin.Context) {
	if h.store.Survival == nil || len(h.store.Survival.CoxSummary) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cox summary not available"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.store.Survival.CoxSummary)
}
