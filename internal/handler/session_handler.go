package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/middleware"
	"adminconsole/pkg/response"
)

type SessionHandler struct {
	sessions Sessions
	log      logrus.FieldLogger
}

func NewSessionHandler(sessions Sessions, log logrus.FieldLogger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: log.WithField("handler", "session")}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/session", h.GetSession)
	router.DELETE("/session", h.CloseSession)
}

// GetSession handles GET /console/session
// @Summary      Current workspace
// @Description  Describes the operator's workspace without opening one or extending its lifetime
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=session.Info}
// @Failure      404  {object}  response.Response
// @Router       /console/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Fail(c, http.StatusUnauthorized, "Operator not found in context")
		return
	}
	ws, ok := h.sessions.Lookup(operator)
	if !ok {
		response.Fail(c, http.StatusNotFound, "No open workspace")
		return
	}
	response.OK(c, http.StatusOK, ws.Info())
}

// CloseSession handles DELETE /console/session
// @Summary      Close workspace
// @Description  Drops the operator's controllers; the next request starts from a fresh workspace
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /console/session [delete]
func (h *SessionHandler) CloseSession(c *gin.Context) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Fail(c, http.StatusUnauthorized, "Operator not found in context")
		return
	}
	closed := h.sessions.Close(operator)
	h.log.WithFields(logrus.Fields{"operator": operator, "closed": closed}).Info("workspace close requested")
	response.OK(c, http.StatusOK, gin.H{"closed": closed})
}
