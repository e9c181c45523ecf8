package handlers

import (
	"encoding/json"
	"net/http"

	"ace-models-api/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store        *services.Artifacts
	allowOrigins []string
}

func NewHealthHandler(store *services.Artifacts, allowOrigins []string) *HealthHandler {
	return &HealthHandler{store: store, allowOrigins: allowOrigins}
}

// GetHealth never fails: it reports which artifacts loaded, the batch
// run's provenance snapshot, and the active CORS policy.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	snapshot := h.store.Snapshot
	if snapshot == nil {
		snapshot = json.RawMessage(`{}`)
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"snapshot":  snapshot,
		"artifacts": h.store.Present(),
		"cors":      gin.H{"allow_origins": h.allowOrigins},
	})
}
