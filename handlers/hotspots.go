package handlers

import (
	"net/http"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

type HotspotsHandler struct {
	store *services.Artifacts
}

func NewHotspotsHandler(store *services.Artifacts) *HotspotsHandler {
	return &HotspotsHandler{store: store}
}

// GetHotspots serves the geospatial feature collection exactly as the
// pipeline wrote it.
func (h *HotspotsHandler) GetHotspots(c *gin.Context) {
	if h.store.Hotspots == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hotspots.geojson not available"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.store.Hotspots)
}
