// Package http serves the news bot's health endpoint
package http

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/ideafy1/newsbot/pkg/httputil"
)

// TransportChecker reports whether the update transport is running
type TransportChecker interface {
	Healthy() bool
	TransportName() string
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Transport  string            `json:"transport"`
	Source     string            `json:"source"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler handles HTTP health check requests
type HealthHandler struct {
	transport TransportChecker
	source    string
	logger    zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(transport TransportChecker, source string, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		transport: transport,
		source:    source,
		logger:    logger,
	}
}

// RegisterRoutes mounts the health endpoint
func (h *HealthHandler) RegisterRoutes(r *router.Router) {
	r.GET("/health", h.Handle)
}

// Handle writes the health report
func (h *HealthHandler) Handle(ctx *fasthttp.RequestCtx) {
	transportHealthy := h.transport.Healthy()
	component := ComponentHealth{
		Name:    "telegram_transport",
		Healthy: transportHealthy,
	}
	if !transportHealthy {
		component.Message = "Update transport is not running"
	}

	status := HealthStatusHealthy
	if !transportHealthy {
		status = HealthStatusUnhealthy
	}

	response := HealthResponse{
		Status:     status,
		Transport:  h.transport.TransportName(),
		Source:     h.source,
		Timestamp:  time.Now().UTC(),
		Components: []ComponentHealth{component},
	}

	logEvent := h.logger.Debug()
	if !transportHealthy {
		logEvent = h.logger.Warn()
	}
	logEvent.
		Str("status", string(status)).
		Str("transport", response.Transport).
		Msg("Health check completed")

	httputil.WriteHealthResponse(ctx, response, transportHealthy)
}
