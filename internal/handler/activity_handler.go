package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminconsole/pkg/pagination"
	"adminconsole/pkg/response"
)

type ActivityHandler struct {
	workspaces Workspaces
}

func NewActivityHandler(ws Workspaces) *ActivityHandler {
	return &ActivityHandler{workspaces: ws}
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activity", h.ListActivity)
}

// ListActivity handles GET /console/activity
// @Summary      Workspace activity
// @Description  Activity of every list in the workspace, oldest first, paginated
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]model.ActivityRecord}
// @Router       /console/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	params := pagination.Parse(c)
	all := ws.Activity()
	start, end := pagination.Bounds(params.Page, params.Limit, len(all))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"items":       all[start:end],
		"total":       len(all),
		"page":        params.Page,
		"limit":       params.Limit,
		"total_pages": pagination.TotalPages(len(all), params.Limit),
	}))
}
