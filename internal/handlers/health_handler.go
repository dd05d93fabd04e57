package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// PingFunc reports whether a backing store answers.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	pings map[string]PingFunc
}

func NewHealthHandler(pings map[string]PingFunc) *HealthHandler {
	return &HealthHandler{pings: pings}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	for name, ping := range h.pings {
		if err := ping(ctx); err != nil {
			_ = c.Error(err)
			httperr.Write(c, http.StatusServiceUnavailable, "unhealthy", name+" is not reachable.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
