package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/TommyZ-7/list-checker-tauri/pkg/api/resource"
	"github.com/TommyZ-7/list-checker-tauri/pkg/netutil"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

func (h *Handler) handleFetchSessions(c echo.Context) error {
	sessions, err := h.reg.FetchAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, resource.NewSessionList(sessions))
}

func (h *Handler) handleGetSessionByID(c echo.Context) error {
	m, err := h.reg.Get(c.Param("id"))
	if err != nil && err == storage.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, m)
}

// handleRegisterSession takes the raw creation payload so the participant
// list can arrive in either of its accepted forms.
func (h *Handler) handleRegisterSession(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable payload"})
	}

	id := h.reg.Register(body)
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session definition"})
	}

	return c.JSON(http.StatusCreated, resource.NewRegistration(id))
}

func (h *Handler) handleGetLocalIP(c echo.Context) error {
	ip, err := netutil.LocalIP()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"ip": ip.String()})
}
