package api

import (
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/registry"
)

// Handler contains all properties to serve the API
type Handler struct {
	nc  *nats.Conn
	reg *registry.Registry
}

// NewHandler create a new API handler
func NewHandler(nc *nats.Conn, reg *registry.Registry) *Handler {
	return &Handler{
		nc:  nc,
		reg: reg,
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register API routes")
	api := e.Group("/api/v1")
	api.GET("/sessions", h.handleFetchSessions)
	api.POST("/sessions", h.handleRegisterSession)
	api.GET("/sessions/:id", h.handleGetSessionByID)

	api.GET("/localip", h.handleGetLocalIP)

	api.Any("/realtime-events", h.realtimeEventsHandler())
}
