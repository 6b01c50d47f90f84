package repository

import (
	"context"
	"net/http"

	"adminconsole/internal/model"
)

const rolesPath = "/api/roles"

type RoleRepository interface {
	List(ctx context.Context) ([]model.Role, error)
	Create(ctx context.Context, draft model.RoleDraft) (model.Role, error)
	Update(ctx context.Context, id string, draft model.RoleDraft) (model.Role, error)
	Delete(ctx context.Context, id string) error
}

type roleRepository struct {
	client *Client
}

func NewRoleRepository(client *Client) RoleRepository {
	return &roleRepository{client: client}
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	roles, err := listAll[model.Role](ctx, r.client, rolesPath, "roles")
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].Permissions == nil {
			roles[i].Permissions = []string{}
		}
	}
	return roles, nil
}

func (r *roleRepository) Create(ctx context.Context, draft model.RoleDraft) (model.Role, error) {
	var role model.Role
	err := r.client.doJSON(ctx, http.MethodPost, rolesPath, nil, draft, &role)
	return role, err
}

func (r *roleRepository) Update(ctx context.Context, id string, draft model.RoleDraft) (model.Role, error) {
	var role model.Role
	err := r.client.doJSON(ctx, http.MethodPut, itemPath(rolesPath, id), nil, draft, &role)
	return role, err
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, itemPath(rolesPath, id), nil, nil, nil)
}
