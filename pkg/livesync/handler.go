package livesync

import (
	"github.com/gobwas/ws"
	"github.com/labstack/echo"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/eventchannel"
	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/eventchannel/websocket"
)

// Handler contains all properties to serve the realtime sync endpoint
type Handler struct {
	ctrl *eventchannel.Controller
}

// NewHandler create a new sync endpoint handler
func NewHandler(ctrl *eventchannel.Controller) *Handler {
	return &Handler{
		ctrl: ctrl,
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register livesync routes")
	api := e.Group("/livesync")
	api.Any("/v1", h.eventChannelHandler())
}

func (h *Handler) eventChannelHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			return err
		}
		defer conn.Close()

		terminateCh := make(chan struct{})
		driver := websocket.NewDriver(conn, terminateCh)
		driver.Start()
		defer driver.Close()

		ch := h.ctrl.NewEventChannel(driver)
		defer ch.Close()

		<-terminateCh

		log.Debug("handler exit event channel handler func")
		return nil
	}
}
