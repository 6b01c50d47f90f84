package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"adminconsole/pkg/response"
)

type DashboardHandler struct {
	workspaces Workspaces
	log        logrus.FieldLogger
}

func NewDashboardHandler(ws Workspaces, log logrus.FieldLogger) *DashboardHandler {
	return &DashboardHandler{workspaces: ws, log: log.WithField("handler", "dashboard")}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}

// GetDashboard handles GET /console/dashboard
// @Summary      Dashboard overview
// @Description  Totals of users, roles and permissions, users per role and recent registrations
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.Dashboard}
// @Failure      502  {object}  response.Response
// @Router       /console/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	d, err := ws.Dashboard.GetDashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusBadGateway, err.Error())
		return
	}
	response.OK(c, http.StatusOK, d)
}
