package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct {
	store *services.Artifacts
}

func NewForecastHandler(store *services.Artifacts) *ForecastHandler {
	return &ForecastHandler{store: store}
}

// ListRoutes returns the sorted route IDs present in the forecast
// table so UIs can populate dropdowns. An absent table yields an empty
// list, never an error.
func (h *ForecastHandler) ListRoutes(c *gin.Context) {
	routes := h.store.RouteIDs()
	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}

// GetByRoute returns the stored forecast record verbatim. A missing
// table is a deployment problem (503); an unknown route ID is a normal
// client miss (404).
func (h *ForecastHandler) GetByRoute(c *gin.Context) {
	routeID := c.Param("route_id")

	record, err := h.store.Forecast(routeID)
	switch {
	case errors.Is(err, services.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "forecasts.json not available"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No forecast for %s", routeID)})
	default:
		c.Data(http.StatusOK, "application/json; charset=utf-8", record)
	}
}
