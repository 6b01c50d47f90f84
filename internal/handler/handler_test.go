package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/export"
	"adminconsole/internal/listing"
	"adminconsole/internal/middleware"
	"adminconsole/internal/model"
	"adminconsole/internal/session"
	"adminconsole/pkg/response"
)

// remoteAPI is an in-memory users/roles backend speaking the response envelope
type remoteAPI struct {
	mu     sync.Mutex
	users  []model.User
	roles  []model.Role
	locked map[string]bool
	seq    int
}

func newRemoteAPI(users int) *remoteAPI {
	api := &remoteAPI{locked: map[string]bool{}}
	for i := 1; i <= users; i++ {
		api.users = append(api.users, model.User{
			ID:        fmt.Sprintf("u%02d", i),
			Name:      fmt.Sprintf("user-%02d", i),
			Email:     fmt.Sprintf("user%02d@example.com", i),
			Role:      "User",
			Status:    model.UserStatusActive,
			CreatedAt: time.Date(2025, 1, i, 0, 0, 0, 0, time.UTC),
		})
	}
	api.roles = []model.Role{{ID: "r1", Name: "User", Permissions: []string{"read"}}}
	return api
}

func (a *remoteAPI) write(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response.Success(status, data))
}

func (a *remoteAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.write(w, http.StatusOK, map[string]any{"users": a.users, "total": len(a.users), "page": 1, "limit": 100})
	})
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var d model.UserDraft
		_ = json.NewDecoder(r.Body).Decode(&d)
		a.mu.Lock()
		defer a.mu.Unlock()
		a.seq++
		u := model.User{ID: fmt.Sprintf("new%d", a.seq), Name: d.Name, Email: d.Email, Role: d.Role, Status: d.Status}
		a.users = append(a.users, u)
		a.write(w, http.StatusCreated, u)
	})
	mux.HandleFunc("DELETE /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.locked[r.PathValue("id")] {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(response.Error(http.StatusConflict, "user is locked"))
			return
		}
		a.write(w, http.StatusOK, "User deleted successfully")
	})
	mux.HandleFunc("GET /api/roles", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.write(w, http.StatusOK, map[string]any{"roles": a.roles, "total": len(a.roles), "page": 1, "limit": 100})
	})
	mux.HandleFunc("PUT /api/roles/{id}", func(w http.ResponseWriter, r *http.Request) {
		var d model.RoleDraft
		_ = json.NewDecoder(r.Body).Decode(&d)
		a.mu.Lock()
		defer a.mu.Unlock()
		role := model.Role{ID: r.PathValue("id"), Name: d.Name, Description: d.Description, Permissions: d.Permissions}
		for i := range a.roles {
			if a.roles[i].ID == role.ID {
				a.roles[i] = role
			}
		}
		a.write(w, http.StatusOK, role)
	})
	mux.HandleFunc("GET /api/audit-logs", func(w http.ResponseWriter, r *http.Request) {
		a.write(w, http.StatusOK, map[string]any{
			"logs": []model.ActivityLog{
				{ID: "l1", User: "admin", Action: "CREATE_USER", Timestamp: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
				{ID: "l2", User: "admin", Action: "UPDATE_ROLE", Timestamp: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
				{ID: "l3", Action: "SYNC", Timestamp: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
			},
			"total": 3, "page": 1, "limit": 100,
		})
	})
	mux.HandleFunc("GET /api/me", func(w http.ResponseWriter, r *http.Request) {
		a.write(w, http.StatusOK, model.Profile{ID: "op-1", Name: "Operator"})
	})
	mux.HandleFunc("PUT /api/me", func(w http.ResponseWriter, r *http.Request) {
		var req model.ProfileUpdate
		_ = json.NewDecoder(r.Body).Decode(&req)
		a.write(w, http.StatusOK, model.Profile{ID: "op-1", Name: req.Name, Email: req.Email})
	})
	return mux
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

type console struct {
	t      *testing.T
	router *gin.Engine
	api    *remoteAPI
}

func newConsole(t *testing.T, users int) *console {
	t.Helper()
	gin.SetMode(gin.TestMode)
	api := newRemoteAPI(users)
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	log, _ := test.NewNullLogger()
	registry := session.NewRegistry(session.Options{
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		TTL:         time.Minute,
		MaxSessions: 8,
		List: listing.Options{
			PageSize:         10,
			BatchConcurrency: 4,
			CacheSize:        16,
			Encoders:         export.Encoders(export.Targets()),
		},
		Logger: log,
	})

	r := gin.New()
	group := r.Group("/console", func(c *gin.Context) {
		if op := c.GetHeader("X-Test-Operator"); op != "" {
			c.Set(middleware.OperatorKey, op)
		}
		c.Next()
	})
	RegisterConsoleRoutes(group, registry, log)
	NewHealthHandler(registry, nil).RegisterRoutes(r)
	return &console{t: t, router: r, api: api}
}

func (c *console) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Operator", "op-1")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestSnapshot_LoadsOnFirstAccess(t *testing.T) {
	c := newConsole(t, 25)

	w, env := c.do(http.MethodGet, "/console/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Equal(t, listing.StatusReady, snap.Status)
	assert.Equal(t, 25, snap.Total)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Len(t, snap.Items, 10)
	assert.Equal(t, "user-01", snap.Items[0].Name)
}

func TestQuery_SearchAndPage(t *testing.T) {
	c := newConsole(t, 25)
	c.do(http.MethodGet, "/console/users", nil)

	page := 9
	_, env := c.do(http.MethodPut, "/console/users/query", QueryRequest{Page: &page})
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Equal(t, 3, snap.Page, "clamped to the last page")
	assert.Len(t, snap.Items, 5)

	term := "USER2"
	_, env = c.do(http.MethodPut, "/console/users/query", QueryRequest{Search: &term})
	snap = decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 6, snap.Filtered)
}

func TestToggleSort(t *testing.T) {
	c := newConsole(t, 3)
	c.do(http.MethodGet, "/console/users", nil)

	c.do(http.MethodPost, "/console/users/sort/createdAt", nil)
	_, env := c.do(http.MethodPost, "/console/users/sort/createdAt", nil)
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Equal(t, listing.Descending, snap.Query.SortDirection)
	assert.Equal(t, "user-03", snap.Items[0].Name)

	w, env := c.do(http.MethodPost, "/console/users/sort/password", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "unknown sort key")
}

func TestSelection(t *testing.T) {
	c := newConsole(t, 3)
	c.do(http.MethodGet, "/console/users", nil)

	_, env := c.do(http.MethodPost, "/console/users/selection/u02", nil)
	toggled := decode[ToggleSelectionResponse](t, env.Data)
	assert.True(t, toggled.Selected)
	assert.Equal(t, []string{"u02"}, toggled.IDs)

	_, env = c.do(http.MethodPut, "/console/users/selection", SelectPageRequest{Selected: true})
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.True(t, snap.AllSelected)
	assert.Len(t, snap.Selected, 3)

	_, env = c.do(http.MethodPut, "/console/users/selection", SelectPageRequest{Selected: false})
	snap = decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Empty(t, snap.Selected)

	c.do(http.MethodPost, "/console/users/selection/u01", nil)
	w, env := c.do(http.MethodDelete, "/console/users/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Empty(t, snap.Selected)
	assert.False(t, snap.AllSelected)
}

func TestCreate(t *testing.T) {
	c := newConsole(t, 1)
	c.do(http.MethodGet, "/console/users", nil)

	w, env := c.do(http.MethodPost, "/console/users", model.UserDraft{Name: "Ada", Email: "ada@example.com", Role: "User", Status: "active"})
	require.Equal(t, http.StatusCreated, w.Code, env.Error)
	assert.Equal(t, "Ada", decode[model.User](t, env.Data).Name)

	_, env = c.do(http.MethodGet, "/console/users/activity", nil)
	entries := decode[[]listing.Entry](t, env.Data)
	require.Len(t, entries, 1)
	assert.Equal(t, "Created new user: Ada", entries[0].Message)

	w, _ = c.do(http.MethodPost, "/console/users", model.UserDraft{Name: "Bad", Email: "not-an-email", Role: "User", Status: "active"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = c.do(http.MethodPost, "/console/users", model.UserDraft{Name: "Bad", Email: "bad@example.com", Role: "User", Status: "banned"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_RemoteFailureIsBadGateway(t *testing.T) {
	c := newConsole(t, 2)
	c.api.locked["u01"] = true
	c.do(http.MethodGet, "/console/users", nil)

	w, env := c.do(http.MethodDelete, "/console/users/u01", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, env.Error, "user is locked")

	w, _ = c.do(http.MethodDelete, "/console/users/u02", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = c.do(http.MethodGet, "/console/users", nil)
	assert.Equal(t, 1, decode[listing.Snapshot[model.User]](t, env.Data).Total)
}

func TestBatchDelete(t *testing.T) {
	c := newConsole(t, 3)
	c.api.locked["u03"] = true
	c.do(http.MethodGet, "/console/users", nil)

	w, _ := c.do(http.MethodPost, "/console/users/batch-delete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "nothing selected")

	c.do(http.MethodPut, "/console/users/selection", SelectPageRequest{Selected: true})
	w, env := c.do(http.MethodPost, "/console/users/batch-delete", nil)
	require.Equal(t, http.StatusMultiStatus, w.Code)
	assert.Equal(t, response.StatusPartial, env.Status)
	res := decode[listing.BatchResult](t, env.Data)
	assert.ElementsMatch(t, []string{"u01", "u02"}, res.Deleted)
	assert.Equal(t, []string{"u03"}, res.Failed)

	_, env = c.do(http.MethodGet, "/console/users", nil)
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Equal(t, 1, snap.Total)
	assert.Empty(t, snap.Selected)
	assert.Equal(t, "Deleted selected users", snap.Activity[len(snap.Activity)-1].Message)
}

func TestBatchDelete_ChunkedBodyDeletesGivenIDs(t *testing.T) {
	c := newConsole(t, 3)
	c.do(http.MethodGet, "/console/users", nil)
	c.do(http.MethodPost, "/console/users/selection/u01", nil)

	req := httptest.NewRequest(http.MethodPost, "/console/users/batch-delete", io.MultiReader(strings.NewReader(`{"ids":["u03"]}`)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Operator", "op-1")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, []string{"u03"}, decode[listing.BatchResult](t, env.Data).Deleted)

	_, env = c.do(http.MethodGet, "/console/users", nil)
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "u01", snap.Items[0].ID, "the selected user is kept")
	assert.Equal(t, "u02", snap.Items[1].ID)
}

func TestBatchDelete_MalformedBodyIsBadRequest(t *testing.T) {
	c := newConsole(t, 2)
	c.do(http.MethodGet, "/console/users", nil)

	req := httptest.NewRequest(http.MethodPost, "/console/users/batch-delete", strings.NewReader(`{"ids":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Operator", "op-1")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTable(t *testing.T) {
	c := newConsole(t, 12)

	w, env := c.do(http.MethodGet, "/console/users/table", nil)
	require.Equal(t, http.StatusOK, w.Code, env.Error)
	table := decode[listing.Table](t, env.Data)
	assert.Equal(t, []string{"Name", "Email", "Role", "Status", "Created At"}, table.Headers)
	assert.Len(t, table.Rows, 12, "the whole collection, not the visible page")
}

func TestDrafts(t *testing.T) {
	c := newConsole(t, 2)

	_, env := c.do(http.MethodGet, "/console/users/draft", nil)
	assert.Equal(t, model.NewUserDraft(), decode[model.UserDraft](t, env.Data))

	_, env = c.do(http.MethodGet, "/console/users/u02/draft", nil)
	assert.Equal(t, model.UserDraft{Name: "user-02", Email: "user02@example.com", Role: "User", Status: "active"}, decode[model.UserDraft](t, env.Data))

	_, env = c.do(http.MethodGet, "/console/roles/draft", nil)
	assert.Equal(t, model.RoleDraft{Permissions: []string{}}, decode[model.RoleDraft](t, env.Data))

	_, env = c.do(http.MethodGet, "/console/roles/r1/draft", nil)
	assert.Equal(t, model.RoleDraft{Name: "User", Permissions: []string{"read"}}, decode[model.RoleDraft](t, env.Data))

	w, env := c.do(http.MethodGet, "/console/users/nobody/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, env.Error, "not found")
}

func TestToggleRolePermission(t *testing.T) {
	c := newConsole(t, 1)

	w, env := c.do(http.MethodPost, "/console/roles/r1/permissions/write", nil)
	require.Equal(t, http.StatusOK, w.Code, env.Error)
	assert.Equal(t, []string{"read", "write"}, decode[model.Role](t, env.Data).Permissions)

	_, env = c.do(http.MethodPost, "/console/roles/r1/permissions/read", nil)
	assert.Equal(t, []string{"write"}, decode[model.Role](t, env.Data).Permissions)

	_, env = c.do(http.MethodGet, "/console/roles", nil)
	snap := decode[listing.Snapshot[model.Role]](t, env.Data)
	assert.Equal(t, []string{"write"}, snap.Items[0].Permissions)
	assert.Equal(t, "Updated role: User", snap.Activity[len(snap.Activity)-1].Message)

	w, _ = c.do(http.MethodPost, "/console/roles/r1/permissions/admin", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = c.do(http.MethodPost, "/console/roles/missing/permissions/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	c := newConsole(t, 2)

	w, _ := c.do(http.MethodGet, "/console/session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "looking does not open a workspace")

	c.do(http.MethodDelete, "/console/users/u01", nil)
	w, env := c.do(http.MethodGet, "/console/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[session.Info](t, env.Data)
	assert.Equal(t, "op-1", info.Operator)
	assert.Equal(t, listing.StatusReady, info.Users, "new workspaces are warmed")
	assert.Equal(t, 1, info.Activity)

	_, env = c.do(http.MethodDelete, "/console/session", nil)
	assert.Equal(t, map[string]bool{"closed": true}, decode[map[string]bool](t, env.Data))
	_, env = c.do(http.MethodDelete, "/console/session", nil)
	assert.Equal(t, map[string]bool{"closed": false}, decode[map[string]bool](t, env.Data))

	_, env = c.do(http.MethodGet, "/console/users", nil)
	snap := decode[listing.Snapshot[model.User]](t, env.Data)
	assert.Empty(t, snap.Activity, "a fresh workspace starts without history")

	_, env = c.do(http.MethodGet, "/console/session", nil)
	assert.NotEqual(t, info.ID, decode[session.Info](t, env.Data).ID)
}

func TestActivityLogs(t *testing.T) {
	c := newConsole(t, 1)

	w, env := c.do(http.MethodGet, "/console/activity-logs?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code, env.Error)
	page := decode[struct {
		Logs       []model.ActivityLog `json:"logs"`
		Total      int                 `json:"total"`
		TotalPages int                 `json:"total_pages"`
	}](t, env.Data)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Logs, 2)
	assert.Equal(t, "l2", page.Logs[0].ID)
	assert.Equal(t, "l3", page.Logs[1].ID)
	assert.Equal(t, model.SystemActor, page.Logs[1].User)
}

func TestExport(t *testing.T) {
	c := newConsole(t, 12)
	c.do(http.MethodGet, "/console/users", nil)

	w, _ := c.do(http.MethodGet, "/console/users/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="users.xlsx"`)
	assert.NotZero(t, w.Body.Len())

	w, _ = c.do(http.MethodGet, "/console/roles/export?format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w, _ = c.do(http.MethodGet, "/console/users/export?format=csv", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardProfileAndActivity(t *testing.T) {
	c := newConsole(t, 2)

	_, env := c.do(http.MethodGet, "/console/dashboard", nil)
	d := decode[model.Dashboard](t, env.Data)
	assert.Equal(t, 2, d.TotalUsers)
	assert.Equal(t, 1, d.TotalPermissions)

	_, env = c.do(http.MethodGet, "/console/profile", nil)
	assert.Equal(t, "Operator", decode[model.Profile](t, env.Data).Name)

	w, _ := c.do(http.MethodPut, "/console/profile", model.ProfileUpdate{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, env = c.do(http.MethodPut, "/console/profile", model.ProfileUpdate{Name: "Ada"})
	assert.Equal(t, "Ada", decode[model.Profile](t, env.Data).Name)

	c.do(http.MethodGet, "/console/users", nil)
	c.do(http.MethodDelete, "/console/users/u01", nil)
	_, env = c.do(http.MethodGet, "/console/activity?limit=5", nil)
	feed := decode[struct {
		Items []model.ActivityRecord `json:"items"`
		Total int                    `json:"total"`
	}](t, env.Data)
	assert.Equal(t, 1, feed.Total)
	assert.Equal(t, "users", feed.Items[0].Entity)
}

func TestMissingOperatorIsUnauthorized(t *testing.T) {
	c := newConsole(t, 1)
	req := httptest.NewRequest(http.MethodGet, "/console/users", nil)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	c := newConsole(t, 1)
	c.do(http.MethodGet, "/console/users", nil)
	w, _ := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","workspaces":1}`, w.Body.String())
}
