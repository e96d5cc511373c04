package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/store"
)

// HealthHandler reports service and backend liveness.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler constructs a health handler over the active backend.
func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Check always answers HTTP 200; backend trouble only flips the db field.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "ok"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		dbStatus = "error"
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		IP:        c.ClientIP(),
		DB:        dbStatus,
	})
}
