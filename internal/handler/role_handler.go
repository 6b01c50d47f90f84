package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/model"
	"adminconsole/pkg/response"
)

// RoleHandler serves the role screen's permission checkboxes
type RoleHandler struct {
	workspaces Workspaces
	log        logrus.FieldLogger
}

func NewRoleHandler(ws Workspaces, log logrus.FieldLogger) *RoleHandler {
	return &RoleHandler{workspaces: ws, log: log.WithField("entity", "roles")}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/roles/:id/permissions/:permission", h.TogglePermission)
}

// TogglePermission grants or revokes one permission of a role and saves it
// @Summary      Toggle role permission
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true  "Role ID"
// @Param        permission  path      string  true  "read, write or delete"
// @Success      200         {object}  response.Response{data=model.Role}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      502         {object}  response.Response
// @Router       /console/roles/{id}/permissions/{permission} [post]
func (h *RoleHandler) TogglePermission(c *gin.Context) {
	permission := c.Param("permission")
	if !slices.Contains(model.Permissions, permission) {
		response.Fail(c, http.StatusBadRequest, "Unknown permission: "+permission)
		return
	}
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}

	id := c.Param("id")
	role, err := ws.Roles.Find(id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	draft := model.DraftFromRole(role)
	draft.TogglePermission(permission)

	updated, err := ws.Roles.Update(c.Request.Context(), id, draft)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, updated)
}
