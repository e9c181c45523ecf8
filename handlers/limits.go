package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultCandidateLimit = 100
	MinCandidateLimit     = 1
	MaxCandidateLimit     = 200
)

// ParseCandidateLimit reads the limit query parameter and clamps it to
// [MinCandidateLimit, MaxCandidateLimit]. Unparseable values fall back
// to the default; the clamp applies regardless of caller input.
func ParseCandidateLimit(c *gin.Context) int {
	limit := DefaultCandidateLimit

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	if limit < MinCandidateLimit {
		limit = MinCandidateLimit
	}
	if limit > MaxCandidateLimit {
		limit = MaxCandidateLimit
	}
	return limit
}
