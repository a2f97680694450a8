package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthResponse struct {
	Status  string    `json:"status"`
	Service string    `json:"service"`
	Version string    `json:"version"`
	DB      string    `json:"db"`
	Time    time.Time `json:"time"`
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
}

func NewHealthHandler(serviceName, version string, db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		dbStatus = "up"
		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.version,
		DB:      dbStatus,
		Time:    time.Now().UTC(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
