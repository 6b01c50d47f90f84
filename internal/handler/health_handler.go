package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gauges reports live counts for the health endpoint
type Gauges interface {
	Len() int
}

type HealthHandler struct {
	workspaces  Gauges
	connections func() int
}

func NewHealthHandler(workspaces Gauges, connections func() int) *HealthHandler {
	return &HealthHandler{workspaces: workspaces, connections: connections}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.Health)
}

// Health handles GET /health
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{"status": "OK", "workspaces": h.workspaces.Len()}
	if h.connections != nil {
		body["connections"] = h.connections()
	}
	c.JSON(http.StatusOK, body)
}
