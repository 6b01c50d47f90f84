// Package session keeps one workspace of list controllers per signed-in operator.
package session

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/listing"
	"adminconsole/internal/model"
	"adminconsole/internal/repository"
	"adminconsole/internal/service"
)

// Publisher delivers list events to the operator's open connections.
type Publisher interface {
	Publish(operator string, ev listing.Event)
}

// Gauge tracks how many workspaces are alive.
type Gauge interface {
	WorkspaceOpened()
	WorkspaceClosed()
}

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	TTL         time.Duration
	MaxSessions int
	DateLayout  string
	// List is copied into every controller; OnEvent is set per workspace.
	List      listing.Options
	Logger    logrus.FieldLogger
	Publisher Publisher
	Gauge     Gauge
}

// Workspace holds the controllers of one operator. Controllers are never shared.
type Workspace struct {
	ID        string
	Operator  string
	CreatedAt time.Time

	Users        *service.UserController
	Roles        *service.RoleController
	Dashboard    service.DashboardService
	Profile      service.ProfileService
	ActivityLogs service.ActivityLogService

	client *repository.Client
	log    logrus.FieldLogger
}

// Info describes a live workspace without touching its collections.
type Info struct {
	ID        string         `json:"id"`
	Operator  string         `json:"operator"`
	CreatedAt time.Time      `json:"created_at"`
	Users     listing.Status `json:"users"`
	Roles     listing.Status `json:"roles"`
	Activity  int            `json:"activity"`
}

func (w *Workspace) Info() Info {
	return Info{
		ID:        w.ID,
		Operator:  w.Operator,
		CreatedAt: w.CreatedAt,
		Users:     w.Users.Status(),
		Roles:     w.Roles.Status(),
		Activity:  w.Users.ActivityCount() + w.Roles.ActivityCount(),
	}
}

// Activity merges the users and roles activity into one feed, oldest first.
func (w *Workspace) Activity() []model.ActivityRecord {
	var out []model.ActivityRecord
	for _, e := range w.Users.Activity() {
		out = append(out, model.ActivityRecord{Entity: "users", Message: e.Message, Timestamp: e.Timestamp})
	}
	for _, e := range w.Roles.Activity() {
		out = append(out, model.ActivityRecord{Entity: "roles", Message: e.Message, Timestamp: e.Timestamp})
	}
	slices.SortStableFunc(out, func(a, b model.ActivityRecord) int {
		return cmp.Compare(a.Timestamp.UnixNano(), b.Timestamp.UnixNano())
	})
	if out == nil {
		out = []model.ActivityRecord{}
	}
	return out
}

// Registry creates workspaces on first access and drops them after TTL of inactivity or
// when more than MaxSessions operators are active.
type Registry struct {
	opts Options
	log  logrus.FieldLogger

	mu         sync.Mutex
	workspaces *expirable.LRU[string, *Workspace]
}

func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	r := &Registry{opts: opts, log: opts.Logger.WithField("component", "session")}
	r.workspaces = expirable.NewLRU[string, *Workspace](opts.MaxSessions, r.onEvict, opts.TTL)
	return r
}

// Acquire returns the operator's workspace, creating and warming it when missing. The bearer
// token is refreshed and the idle timer restarted on every call.
func (r *Registry) Acquire(ctx context.Context, operator, token string) (*Workspace, error) {
	ws, opened, err := r.acquire(operator, token)
	if err != nil {
		return nil, err
	}
	if opened {
		ws.Warm(ctx)
	}
	return ws, nil
}

func (r *Registry) acquire(operator, token string) (*Workspace, bool, error) {
	if operator == "" {
		return nil, false, errors.New("session: operator is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces.Get(operator)
	if !ok {
		// drop an expired entry not yet swept so its eviction is still reported
		r.workspaces.Remove(operator)
		var err error
		ws, err = r.open(operator)
		if err != nil {
			return nil, false, err
		}
		if r.opts.Gauge != nil {
			r.opts.Gauge.WorkspaceOpened()
		}
		r.log.WithFields(logrus.Fields{"operator": operator, "workspace": ws.ID}).Info("workspace opened")
	}
	ws.client.SetToken(token)
	r.workspaces.Add(operator, ws)
	return ws, !ok, nil
}

// Lookup returns the workspace without creating it or extending its lifetime.
func (r *Registry) Lookup(operator string) (*Workspace, bool) {
	return r.workspaces.Peek(operator)
}

// Close drops the operator's workspace and reports whether one was open.
func (r *Registry) Close(operator string) bool {
	return r.workspaces.Remove(operator)
}

func (r *Registry) Len() int { return r.workspaces.Len() }

func (r *Registry) open(operator string) (*Workspace, error) {
	log := r.opts.Logger.WithField("operator", operator)
	client, err := repository.NewClient(r.opts.BaseURL, r.opts.Timeout, log)
	if err != nil {
		return nil, errors.Wrap(err, "session: api client")
	}

	listOpts := r.opts.List
	listOpts.Logger = log
	if r.opts.Publisher != nil {
		pub := r.opts.Publisher
		listOpts.OnEvent = func(ev listing.Event) { pub.Publish(operator, ev) }
	}

	users, err := service.NewUserController(repository.NewUserRepository(client), r.opts.DateLayout, listOpts)
	if err != nil {
		return nil, err
	}
	roles, err := service.NewRoleController(repository.NewRoleRepository(client), listOpts)
	if err != nil {
		return nil, err
	}
	return &Workspace{
		ID:           uuid.NewString(),
		Operator:     operator,
		CreatedAt:    time.Now(),
		Users:        users,
		Roles:        roles,
		Dashboard:    service.NewDashboardService(repository.NewUserRepository(client), repository.NewRoleRepository(client)),
		Profile:      service.NewProfileService(repository.NewProfileRepository(client)),
		ActivityLogs: service.NewActivityLogService(repository.NewActivityLogRepository(client)),
		client:       client,
		log:          log,
	}, nil
}

func (r *Registry) onEvict(operator string, ws *Workspace) {
	if r.opts.Gauge != nil {
		r.opts.Gauge.WorkspaceClosed()
	}
	r.log.WithFields(logrus.Fields{"operator": operator, "workspace": ws.ID}).Info("workspace closed")
}

// Warm fetches both idle collections of a workspace. Failures are logged and otherwise
// surface through each list's status.
func (w *Workspace) Warm(ctx context.Context) {
	if w.Users.Status() == listing.StatusIdle {
		if err := w.Users.FetchAll(ctx); err != nil {
			w.log.WithError(err).WithField("entity", "users").Warn("warm failed")
		}
	}
	if w.Roles.Status() == listing.StatusIdle {
		if err := w.Roles.FetchAll(ctx); err != nil {
			w.log.WithError(err).WithField("entity", "roles").Warn("warm failed")
		}
	}
}
