package service

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"adminconsole/internal/model"
	"adminconsole/internal/repository"
)

const recentRegistrations = 5

type DashboardService interface {
	// GetDashboard loads users and roles concurrently and summarizes them.
	GetDashboard(ctx context.Context) (model.Dashboard, error)
}

type dashboardService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	now   func() time.Time
}

func NewDashboardService(users repository.UserRepository, roles repository.RoleRepository) DashboardService {
	return &dashboardService{users: users, roles: roles, now: time.Now}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (model.Dashboard, error) {
	var (
		users []model.User
		roles []model.Role
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return errors.Wrap(err, "list users")
	})
	g.Go(func() error {
		var err error
		roles, err = s.roles.List(gctx)
		return errors.Wrap(err, "list roles")
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return Summarize(users, roles, s.now()), nil
}

// Summarize computes the dashboard figures from already loaded collections
func Summarize(users []model.User, roles []model.Role, at time.Time) model.Dashboard {
	d := model.Dashboard{
		TotalUsers:    len(users),
		TotalRoles:    len(roles),
		UsersPerRole:  make([]model.RoleUsage, 0, len(roles)),
		Registrations: []model.RegistrationPoint{},
		Recent:        []model.Registration{},
		GeneratedAt:   at,
	}

	perRole := make(map[string]int, len(roles))
	for _, u := range users {
		perRole[u.Role]++
	}
	for _, r := range roles {
		d.TotalPermissions += len(r.Permissions)
		d.UsersPerRole = append(d.UsersPerRole, model.RoleUsage{Role: r.Name, UserCount: perRole[r.Name]})
	}

	byDate := slices.Clone(users)
	slices.SortStableFunc(byDate, func(a, b model.User) int { return a.CreatedAt.Compare(b.CreatedAt) })
	// Undated users sort first and never count towards the cumulative total.
	dated := 0
	for _, u := range byDate {
		if u.CreatedAt.IsZero() {
			continue
		}
		dated++
		day := u.CreatedAt.Format(time.DateOnly)
		if n := len(d.Registrations); n > 0 && d.Registrations[n-1].Date == day {
			d.Registrations[n-1].Total = dated
			continue
		}
		d.Registrations = append(d.Registrations, model.RegistrationPoint{Date: day, Total: dated})
	}

	for i := len(byDate) - 1; i >= 0 && len(d.Recent) < recentRegistrations; i-- {
		d.Recent = append(d.Recent, model.Registration{Name: byDate[i].Name, CreatedAt: byDate[i].CreatedAt})
	}
	return d
}
