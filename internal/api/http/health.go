package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a backend the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Backends  map[string]string `json:"backends,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	backends    map[string]Pinger
}

func NewHealthHandler(serviceName, version string, backends map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		backends:    backends,
	}
}

// HealthCheck reports each backend as up or down. The service itself stays
// "healthy" so a backend outage does not take the landing page out of rotation.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	statuses := make(map[string]string, len(h.backends))
	for name, b := range h.backends {
		if b == nil {
			statuses[name] = "disabled"
			continue
		}
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		if err := b.Ping(pingCtx); err != nil {
			statuses[name] = "down"
		} else {
			statuses[name] = "up"
		}
		cancel()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Backends:  statuses,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
