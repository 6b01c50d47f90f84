package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/listing"
	"adminconsole/internal/middleware"
	"adminconsole/internal/session"
	"adminconsole/pkg/response"
)

// Workspaces resolves the calling operator's workspace
type Workspaces interface {
	Acquire(ctx context.Context, operator, token string) (*session.Workspace, error)
}

// Sessions also lets operators inspect and tear down their own workspace
type Sessions interface {
	Workspaces
	Lookup(operator string) (*session.Workspace, bool)
	Close(operator string) bool
}

// workspace loads the workspace of the authenticated operator, aborting the request on failure
func workspace(c *gin.Context, ws Workspaces) (*session.Workspace, bool) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Fail(c, http.StatusUnauthorized, "Operator not found in context")
		return nil, false
	}
	w, err := ws.Acquire(c.Request.Context(), operator, middleware.AccessToken(c))
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return w, true
}

// writeError maps controller and remote failures onto the response envelope
func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	_ = c.Error(err)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, listing.ErrUnknownSortKey), errors.Is(err, listing.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, listing.ErrNotFound):
		status = http.StatusNotFound
	case listing.IsFetchFailure(err), listing.IsMutationFailure(err):
		status = http.StatusBadGateway
	default:
		log.WithError(err).Error("unexpected failure")
	}
	response.Fail(c, status, err.Error())
}

// RegisterConsoleRoutes mounts every operator screen under group
func RegisterConsoleRoutes(group *gin.RouterGroup, ws Sessions, log logrus.FieldLogger) {
	NewListHandler("users", ws, usersOf, userDrafts, log).RegisterRoutes(group)
	NewListHandler("roles", ws, rolesOf, roleDrafts, log).RegisterRoutes(group)
	NewRoleHandler(ws, log).RegisterRoutes(group)
	NewDashboardHandler(ws, log).RegisterRoutes(group)
	NewProfileHandler(ws, log).RegisterRoutes(group)
	NewActivityHandler(ws).RegisterRoutes(group)
	NewActivityLogHandler(ws, log).RegisterRoutes(group)
	NewSessionHandler(ws, log).RegisterRoutes(group)
}
