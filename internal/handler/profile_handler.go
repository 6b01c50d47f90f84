package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/model"
	"adminconsole/internal/service"
	"adminconsole/pkg/response"
)

type ProfileHandler struct {
	workspaces Workspaces
	log        logrus.FieldLogger
}

func NewProfileHandler(ws Workspaces, log logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{workspaces: ws, log: log.WithField("handler", "profile")}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)
}

// GetProfile handles GET /console/profile
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.Profile}
// @Failure      502  {object}  response.Response
// @Router       /console/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	p, err := ws.Profile.GetProfile(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusBadGateway, err.Error())
		return
	}
	response.OK(c, http.StatusOK, p)
}

// UpdateProfile handles PUT /console/profile
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.ProfileUpdate  true  "Profile fields"
// @Success      200      {object}  response.Response{data=model.Profile}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /console/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req model.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	p, err := ws.Profile.UpdateProfile(c.Request.Context(), req)
	if errors.Is(err, service.ErrEmptyProfileUpdate) {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusBadGateway, err.Error())
		return
	}
	response.OK(c, http.StatusOK, p)
}
