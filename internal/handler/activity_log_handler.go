package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"adminconsole/pkg/pagination"
	"adminconsole/pkg/response"
)

type ActivityLogHandler struct {
	workspaces Workspaces
	log        logrus.FieldLogger
}

func NewActivityLogHandler(ws Workspaces, log logrus.FieldLogger) *ActivityLogHandler {
	return &ActivityLogHandler{workspaces: ws, log: log.WithField("handler", "activity_logs")}
}

func (h *ActivityLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activity-logs", h.GetActivityLogs)
}

// GetActivityLogs handles GET /console/activity-logs
// @Summary      Server activity logs
// @Description  Who did what and when, as recorded by the users API, newest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]model.ActivityLog}
// @Failure      502    {object}  response.Response
// @Router       /console/activity-logs [get]
func (h *ActivityLogHandler) GetActivityLogs(c *gin.Context) {
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	params := pagination.Parse(c)

	logs, total, err := ws.ActivityLogs.GetActivityLogs(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		_ = c.Error(err)
		h.log.WithError(err).Warn("activity logs unavailable")
		response.Fail(c, http.StatusBadGateway, "Failed to retrieve activity logs: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"logs":        logs,
		"total":       total,
		"page":        params.Page,
		"limit":       params.Limit,
		"total_pages": pagination.TotalPages(total, params.Limit),
	}))
}
