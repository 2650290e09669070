package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/api/resource"
)

// realtimeEventsHandler feeds a monitor websocket with every room event and
// log line mirrored onto the bus.
func (h *Handler) realtimeEventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.nc == nil {
			return c.JSON(http.StatusServiceUnavailable,
				map[string]string{"error": "event bus is not configured"})
		}

		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			log.Error("api: failed to upgrade to websocket: ", err)
			return nil
		}
		defer conn.Close()

		sub, err := h.nc.Subscribe("listchecker.v1.rooms.*.*", func(msg *nats.Msg) {
			// Get room and topic from the NATS subject
			strippedSubject := strings.TrimPrefix(msg.Subject, "listchecker.v1.rooms.")
			s := strings.Split(strippedSubject, ".")
			if len(s) < 2 {
				return
			}
			room := s[0]
			topic := s[1]

			// Parse the message and send it
			var data interface{}
			if err := json.Unmarshal(msg.Data, &data); err == nil {
				event := resource.NewRealtimeEvent(room, topic, data)
				out, _ := json.Marshal(event)
				if err := wsutil.WriteServerMessage(conn, ws.OpText, out); err != nil {
					log.Error("api: failed to send realtime event: ", err)
				}
			}
		})
		if err != nil {
			log.Error("api: failed to subscribe to room events: ", err)
			return nil
		}
		defer sub.Unsubscribe()

		// Block until the monitor disconnects.
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				return nil
			}
		}
	}
}
