package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/export"
	"adminconsole/internal/listing"
	"adminconsole/internal/model"
	"adminconsole/internal/session"
	"adminconsole/pkg/response"
)

// QueryRequest changes the search term and/or the page; omitted fields are kept
type QueryRequest struct {
	Search *string `json:"search"`
	Page   *int    `json:"page"`
}

type SelectPageRequest struct {
	Selected bool `json:"selected"`
}

// BatchDeleteRequest names the ids to delete; empty means the current selection
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

type ToggleSelectionResponse struct {
	ID       string   `json:"id"`
	Selected bool     `json:"selected"`
	IDs      []string `json:"selected_ids"`
}

// Drafts builds the create and edit forms of one entity
type Drafts[T, D any] struct {
	Blank func() D
	From  func(T) D
}

var (
	userDrafts = Drafts[model.User, model.UserDraft]{Blank: model.NewUserDraft, From: model.DraftFromUser}
	roleDrafts = Drafts[model.Role, model.RoleDraft]{Blank: model.NewRoleDraft, From: model.DraftFromRole}
)

func usersOf(w *session.Workspace) *listing.Controller[model.User, model.UserDraft] { return w.Users }
func rolesOf(w *session.Workspace) *listing.Controller[model.Role, model.RoleDraft] { return w.Roles }

// ListHandler serves one entity list screen of the operator's workspace
type ListHandler[T, D any] struct {
	entity     string
	workspaces Workspaces
	controller func(*session.Workspace) *listing.Controller[T, D]
	drafts     Drafts[T, D]
	targets    map[listing.Format]export.Target
	log        logrus.FieldLogger
}

func NewListHandler[T, D any](entity string, ws Workspaces, controller func(*session.Workspace) *listing.Controller[T, D], drafts Drafts[T, D], log logrus.FieldLogger) *ListHandler[T, D] {
	return &ListHandler[T, D]{
		entity:     entity,
		workspaces: ws,
		controller: controller,
		drafts:     drafts,
		targets:    export.Targets(),
		log:        log.WithField("entity", entity),
	}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ListHandler[T, D]) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/" + h.entity)
	{
		list.GET("", h.Snapshot)
		list.POST("/refresh", h.Refresh)
		list.PUT("/query", h.Query)
		list.POST("/sort/:key", h.ToggleSort)
		list.POST("/selection/:id", h.ToggleSelection)
		list.PUT("/selection", h.SelectPage)
		list.DELETE("/selection", h.ClearSelection)
		list.POST("", h.Create)
		list.PUT("/:id", h.Update)
		list.DELETE("/:id", h.Delete)
		list.POST("/batch-delete", h.BatchDelete)
		list.GET("/export", h.Export)
		list.GET("/table", h.Table)
		list.GET("/activity", h.Activity)
		list.GET("/draft", h.BlankDraft)
		list.GET("/:id/draft", h.Draft)
	}
}

func (h *ListHandler[T, D]) resolve(c *gin.Context) (*listing.Controller[T, D], bool) {
	ws, ok := workspace(c, h.workspaces)
	if !ok {
		return nil, false
	}
	return h.controller(ws), true
}

func (h *ListHandler[T, D]) writeSnapshot(c *gin.Context, ctrl *listing.Controller[T, D], status int) {
	snap, err := ctrl.Snapshot()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, status, snap)
}

// Snapshot returns the visible page with the full list state, loading the collection on first access
// @Summary      Get list state
// @Description  Returns the visible page, total pages, query, selection, status and activity of the list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=listing.Snapshot[model.User]}
// @Failure      401     {object}  response.Response
// @Router       /console/{entity} [get]
func (h *ListHandler[T, D]) Snapshot(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if ctrl.Status() == listing.StatusIdle {
		// the error is kept in the snapshot's status
		_ = ctrl.FetchAll(c.Request.Context())
	}
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// Refresh reloads the whole collection from the remote API
// @Summary      Reload list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=listing.Snapshot[model.User]}
// @Failure      502     {object}  response.Response
// @Router       /console/{entity}/refresh [post]
func (h *ListHandler[T, D]) Refresh(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.FetchAll(c.Request.Context()); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// Query changes the search term and/or the page
// @Summary      Search and paginate
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity   path      string        true  "users or roles"
// @Param        payload  body      QueryRequest  true  "Search term and page"
// @Success      200      {object}  response.Response{data=listing.Snapshot[model.User]}
// @Failure      400      {object}  response.Response
// @Router       /console/{entity}/query [put]
func (h *ListHandler[T, D]) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if req.Search != nil {
		ctrl.SetSearch(*req.Search)
	}
	if req.Page != nil {
		ctrl.SetPage(*req.Page)
	}
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// ToggleSort sorts by key, flipping the direction when key is already active
// @Summary      Toggle sort
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Param        key     path      string  true  "Sort key"
// @Success      200     {object}  response.Response{data=listing.Snapshot[model.User]}
// @Failure      400     {object}  response.Response
// @Router       /console/{entity}/sort/{key} [post]
func (h *ListHandler[T, D]) ToggleSort(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.ToggleSort(c.Param("key")); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// ToggleSelection flips one id in the selection
// @Summary      Toggle selection
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Param        id      path      string  true  "Entity ID"
// @Success      200     {object}  response.Response{data=ToggleSelectionResponse}
// @Router       /console/{entity}/selection/{id} [post]
func (h *ListHandler[T, D]) ToggleSelection(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	id := c.Param("id")
	selected := ctrl.ToggleSelection(id)
	response.OK(c, http.StatusOK, ToggleSelectionResponse{ID: id, Selected: selected, IDs: ctrl.Selected()})
}

// SelectPage selects every row of the visible page, or clears the selection
// @Summary      Select or clear page
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity   path      string             true  "users or roles"
// @Param        payload  body      SelectPageRequest  true  "Select all or none"
// @Success      200      {object}  response.Response{data=listing.Snapshot[model.User]}
// @Router       /console/{entity}/selection [put]
func (h *ListHandler[T, D]) SelectPage(c *gin.Context) {
	var req SelectPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	ctrl.SelectPage(req.Selected)
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// ClearSelection deselects every id, including ids outside the visible page
// @Summary      Clear selection
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=listing.Snapshot[model.User]}
// @Router       /console/{entity}/selection [delete]
func (h *ListHandler[T, D]) ClearSelection(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	ctrl.ClearSelection()
	h.writeSnapshot(c, ctrl, http.StatusOK)
}

// Create stores a new entity remotely and appends it to the list
// @Summary      Create entity
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity   path      string           true  "users or roles"
// @Param        payload  body      model.UserDraft  true  "User or role draft"
// @Success      201      {object}  response.Response{data=model.User}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /console/{entity} [post]
func (h *ListHandler[T, D]) Create(c *gin.Context) {
	var draft D
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	created, err := ctrl.Create(c.Request.Context(), draft)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, http.StatusCreated, created)
}

// Update replaces an entity with the remote API's answer
// @Summary      Update entity
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity   path      string           true  "users or roles"
// @Param        id       path      string           true  "Entity ID"
// @Param        payload  body      model.UserDraft  true  "User or role draft"
// @Success      200      {object}  response.Response{data=model.User}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /console/{entity}/{id} [put]
func (h *ListHandler[T, D]) Update(c *gin.Context) {
	var draft D
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	updated, err := ctrl.Update(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, updated)
}

// Delete removes one entity. The browser asks for confirmation before calling it.
// @Summary      Delete entity
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Param        id      path      string  true  "Entity ID"
// @Success      200     {object}  response.Response
// @Failure      502     {object}  response.Response
// @Router       /console/{entity}/{id} [delete]
func (h *ListHandler[T, D]) Delete(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// BatchDelete deletes the given ids, or the current selection when none are given
// @Summary      Delete selected
// @Description  Best effort: ids that fail stay in the list and are reported with status 207
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entity   path      string              true   "users or roles"
// @Param        payload  body      BatchDeleteRequest  false  "Ids to delete"
// @Success      200      {object}  response.Response{data=listing.BatchResult}
// @Success      207      {object}  response.Response{data=listing.BatchResult}
// @Router       /console/{entity}/batch-delete [post]
func (h *ListHandler[T, D]) BatchDelete(c *gin.Context) {
	var req BatchDeleteRequest
	// chunked bodies report ContentLength -1, so only a missing or empty body means no ids
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	ids := req.IDs
	if len(ids) == 0 {
		ids = ctrl.Selected()
	}
	if len(ids) == 0 {
		response.Fail(c, http.StatusBadRequest, "Nothing selected")
		return
	}

	res, err := ctrl.BatchDelete(c.Request.Context(), ids)
	var batchErr *listing.BatchError
	switch {
	case errors.As(err, &batchErr):
		_ = c.Error(err)
		c.JSON(http.StatusMultiStatus, response.Partial(http.StatusMultiStatus, res, err.Error()))
	case err != nil:
		writeError(c, h.log, err)
	default:
		response.OK(c, http.StatusOK, res)
	}
}

// Export downloads the whole collection as a spreadsheet or a document
// @Summary      Export list
// @Tags         lists
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        entity  path      string  true   "users or roles"
// @Param        format  query     string  false  "xlsx (default) or pdf"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /console/{entity}/export [get]
func (h *ListHandler[T, D]) Export(c *gin.Context) {
	format := listing.Format(c.DefaultQuery("format", string(listing.FormatSpreadsheet)))
	target, known := h.targets[format]
	if !known {
		writeError(c, h.log, errors.Wrapf(listing.ErrUnsupportedFormat, "%q", format))
		return
	}
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := ctrl.Export(&buf, format); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, h.entity, target.Extension))
	c.Data(http.StatusOK, target.ContentType, buf.Bytes())
}

// Table returns the whole collection as the header and rows handed to the exporters
// @Summary      List as table
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=listing.Table}
// @Router       /console/{entity}/table [get]
func (h *ListHandler[T, D]) Table(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	response.OK(c, http.StatusOK, ctrl.Table())
}

// BlankDraft returns the defaults of the create form
// @Summary      New entity form
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=model.UserDraft}
// @Router       /console/{entity}/draft [get]
func (h *ListHandler[T, D]) BlankDraft(c *gin.Context) {
	response.OK(c, http.StatusOK, h.drafts.Blank())
}

// Draft returns the edit form prefilled from a loaded entity
// @Summary      Edit entity form
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Param        id      path      string  true  "Entity ID"
// @Success      200     {object}  response.Response{data=model.UserDraft}
// @Failure      404     {object}  response.Response
// @Router       /console/{entity}/{id}/draft [get]
func (h *ListHandler[T, D]) Draft(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	item, err := ctrl.Find(c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, h.drafts.From(item))
}

// Activity lists the actions performed on this list, oldest first
// @Summary      List activity
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        entity  path      string  true  "users or roles"
// @Success      200     {object}  response.Response{data=[]listing.Entry}
// @Router       /console/{entity}/activity [get]
func (h *ListHandler[T, D]) Activity(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	response.OK(c, http.StatusOK, ctrl.Activity())
}
