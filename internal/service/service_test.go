package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/listing"
	"adminconsole/internal/model"
)

type fakeUsers struct {
	rows []model.User
	err  error
}

func (f *fakeUsers) List(context.Context) ([]model.User, error) { return f.rows, f.err }
func (f *fakeUsers) Create(_ context.Context, d model.UserDraft) (model.User, error) {
	u := model.User{ID: "new", Name: d.Name, Email: d.Email, Role: d.Role, Status: d.Status}
	f.rows = append(f.rows, u)
	return u, nil
}
func (f *fakeUsers) Update(_ context.Context, id string, d model.UserDraft) (model.User, error) {
	return model.User{ID: id, Name: d.Name, Email: d.Email, Role: d.Role, Status: d.Status}, nil
}
func (f *fakeUsers) Delete(context.Context, string) error { return nil }

type fakeRoles struct {
	rows []model.Role
	err  error
}

func (f *fakeRoles) List(context.Context) ([]model.Role, error) { return f.rows, f.err }
func (f *fakeRoles) Create(_ context.Context, d model.RoleDraft) (model.Role, error) {
	return model.Role{ID: "new", Name: d.Name, Description: d.Description, Permissions: d.Permissions}, nil
}
func (f *fakeRoles) Update(_ context.Context, id string, d model.RoleDraft) (model.Role, error) {
	return model.Role{ID: id, Name: d.Name, Description: d.Description, Permissions: d.Permissions}, nil
}
func (f *fakeRoles) Delete(context.Context, string) error { return nil }

type fakeProfile struct {
	got model.ProfileUpdate
}

func (f *fakeProfile) Get(context.Context) (model.Profile, error) {
	return model.Profile{ID: "me", Name: "Operator"}, nil
}
func (f *fakeProfile) Update(_ context.Context, req model.ProfileUpdate) (model.Profile, error) {
	f.got = req
	return model.Profile{ID: "me", Name: req.Name, Email: req.Email}, nil
}

func day(d int) time.Time { return time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC) }

func TestUserSchema_SortsAndSearches(t *testing.T) {
	s := UserSchema("")
	users := []model.User{
		{ID: "1", Name: "Bob", Email: "bob@corp.io", Role: "User", CreatedAt: day(3)},
		{ID: "2", Name: "Amy", Email: "amy@example.com", Role: "Admin", CreatedAt: day(1)},
		{ID: "3", Name: "Cid", Email: "cid@corp.io", Role: "Editor", CreatedAt: day(2)},
	}

	q := s.InitialQuery(10)
	q.SortKey = "createdAt"
	page, err := s.Derive(users, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, s.IDs(page.Items))

	q.SearchTerm = "CORP"
	q.SortKey = "name"
	page, err = s.Derive(users, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, s.IDs(page.Items))

	q, err = s.ToggleSort(q, "role")
	require.NoError(t, err)
	q.SearchTerm = ""
	page, err = s.Derive(users, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, s.IDs(page.Items))
}

func TestUserSchema_ExportColumns(t *testing.T) {
	s := UserSchema("02/01/2006")
	table := listing.Project([]model.User{
		{Name: "Amy", Email: "amy@x.io", Role: "Admin", Status: model.UserStatusActive, CreatedAt: day(7)},
		{Name: "Bob", Email: "bob@x.io", Role: "User", Status: model.UserStatusInactive},
	}, s.Columns)

	assert.Equal(t, []string{"Name", "Email", "Role", "Status", "Created At"}, table.Headers)
	assert.Equal(t, []string{"Amy", "amy@x.io", "Admin", "active", "07/01/2025"}, table.Rows[0])
	assert.Equal(t, "", table.Rows[1][4])
}

func TestRoleSchema(t *testing.T) {
	s := RoleSchema()
	roles := []model.Role{
		{ID: "a", Name: "Admin", Description: "all", Permissions: []string{"read", "write", "delete"}},
		{ID: "v", Name: "Viewer", Description: "read only", Permissions: []string{"read"}},
		{ID: "e", Name: "Editor", Description: "edit", Permissions: []string{"read", "write"}},
	}

	q := s.InitialQuery(10)
	q.SortKey = "permissions"
	page, err := s.Derive(roles, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"v", "e", "a"}, s.IDs(page.Items))

	q.SearchTerm = "read only"
	page, err = s.Derive(roles, q)
	require.NoError(t, err)
	assert.Empty(t, page.Items, "description is not searchable")

	table := listing.Project(roles[:1], s.Columns)
	assert.Equal(t, []string{"Role Name", "Description", "Permissions"}, table.Headers)
	assert.Equal(t, "read, write, delete", table.Rows[0][2])
}

func TestNewUserController_RecordsActivity(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := &fakeUsers{rows: []model.User{{ID: "1", Name: "Amy"}}}
	ctrl, err := NewUserController(repo, "", listing.Options{PageSize: 10, Logger: log})
	require.NoError(t, err)

	require.NoError(t, ctrl.FetchAll(context.Background()))
	_, err = ctrl.Create(context.Background(), model.UserDraft{Name: "Bob", Email: "bob@x.io", Role: "User", Status: "active"})
	require.NoError(t, err)

	activity := ctrl.Activity()
	require.Len(t, activity, 1)
	assert.Equal(t, "Created new user: Bob", activity[0].Message)
	assert.Len(t, ctrl.Items(), 2)
}

func TestNewRoleController_Export(t *testing.T) {
	log, _ := test.NewNullLogger()
	enc := &captureEncoder{}
	ctrl, err := NewRoleController(&fakeRoles{rows: []model.Role{{ID: "1", Name: "Admin", Permissions: []string{"read"}}}},
		listing.Options{PageSize: 10, Logger: log, Encoders: map[listing.Format]listing.Encoder{listing.FormatSpreadsheet: enc}})
	require.NoError(t, err)
	require.NoError(t, ctrl.FetchAll(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, ctrl.Export(&buf, listing.FormatSpreadsheet))
	assert.Equal(t, "Roles", enc.title)
	assert.Equal(t, [][]string{{"Admin", "", "read"}}, enc.table.Rows)
}

func TestSummarize(t *testing.T) {
	users := []model.User{
		{Name: "u1", Role: "Admin", CreatedAt: day(1)},
		{Name: "u2", Role: "User", CreatedAt: day(1)},
		{Name: "u3", Role: "User", CreatedAt: day(2)},
		{Name: "u4", Role: "Ghost", CreatedAt: day(3)},
		{Name: "u5", Role: "User", CreatedAt: day(4)},
		{Name: "u6", Role: "User", CreatedAt: day(5)},
	}
	roles := []model.Role{
		{Name: "Admin", Permissions: []string{"read", "write", "delete"}},
		{Name: "User", Permissions: []string{"read"}},
		{Name: "Empty"},
	}
	at := day(9)

	d := Summarize(users, roles, at)
	assert.Equal(t, 6, d.TotalUsers)
	assert.Equal(t, 3, d.TotalRoles)
	assert.Equal(t, 4, d.TotalPermissions)
	assert.Equal(t, []model.RoleUsage{{Role: "Admin", UserCount: 1}, {Role: "User", UserCount: 4}, {Role: "Empty", UserCount: 0}}, d.UsersPerRole)
	assert.Equal(t, model.RegistrationPoint{Date: "2025-01-01", Total: 2}, d.Registrations[0])
	assert.Equal(t, model.RegistrationPoint{Date: "2025-01-05", Total: 6}, d.Registrations[len(d.Registrations)-1])
	require.Len(t, d.Recent, 5)
	assert.Equal(t, "u6", d.Recent[0].Name)
	assert.Equal(t, "u2", d.Recent[4].Name)
	assert.Equal(t, at, d.GeneratedAt)
}

func TestSummarize_SkipsUndatedRegistrations(t *testing.T) {
	users := []model.User{
		{Name: "legacy-a", Role: "User"},
		{Name: "legacy-b", Role: "User"},
		{Name: "new", Role: "User", CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)},
	}

	d := Summarize(users, nil, day(9))
	assert.Equal(t, 3, d.TotalUsers)
	assert.Equal(t, []model.RegistrationPoint{{Date: "2024-01-02", Total: 1}}, d.Registrations)
}

func TestSummarize_Empty(t *testing.T) {
	d := Summarize(nil, nil, day(1))
	assert.Zero(t, d.TotalUsers)
	assert.NotNil(t, d.UsersPerRole)
	assert.NotNil(t, d.Recent)
}

func TestDashboardService_PropagatesFailure(t *testing.T) {
	svc := NewDashboardService(&fakeUsers{}, &fakeRoles{err: errors.New("down")})
	_, err := svc.GetDashboard(context.Background())
	assert.ErrorContains(t, err, "list roles")
}

func TestProfileService(t *testing.T) {
	repo := &fakeProfile{}
	svc := NewProfileService(repo)

	_, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{Name: "  "})
	assert.ErrorIs(t, err, ErrEmptyProfileUpdate)

	p, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{Name: " Ada "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Ada", repo.got.Name)

	p, err = svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me", p.ID)
}

type fakeActivityLogs struct {
	rows []model.ActivityLog
	err  error
}

func (f *fakeActivityLogs) List(context.Context) ([]model.ActivityLog, error) { return f.rows, f.err }

func TestActivityLogService_PagesNewestFirst(t *testing.T) {
	repo := &fakeActivityLogs{}
	for i := 1; i <= 5; i++ {
		repo.rows = append(repo.rows, model.ActivityLog{ID: fmt.Sprintf("l%d", i), User: "ada", Action: "UPDATE_USER", Timestamp: day(i)})
	}
	repo.rows[2].User = ""
	svc := NewActivityLogService(repo)

	logs, total, err := svc.GetActivityLogs(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, logs, 2)
	assert.Equal(t, "l5", logs[0].ID)
	assert.Equal(t, "l4", logs[1].ID)

	logs, _, err = svc.GetActivityLogs(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "l3", logs[0].ID)
	assert.Equal(t, model.SystemActor, logs[0].User)

	logs, total, err = svc.GetActivityLogs(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, logs)
}

func TestActivityLogService_WrapsFailure(t *testing.T) {
	svc := NewActivityLogService(&fakeActivityLogs{err: errors.New("down")})
	_, _, err := svc.GetActivityLogs(context.Background(), 1, 20)
	assert.ErrorContains(t, err, "list activity logs: down")
}

type captureEncoder struct {
	title string
	table listing.Table
}

func (e *captureEncoder) Encode(_ io.Writer, title string, t listing.Table) error {
	e.title = title
	e.table = t
	return nil
}
