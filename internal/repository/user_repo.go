package repository

import (
	"context"
	"net/http"

	"adminconsole/internal/model"
)

const usersPath = "/api/users"

// UserRepository is the remote data access for user accounts
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, draft model.UserDraft) (model.User, error)
	Update(ctx context.Context, id string, draft model.UserDraft) (model.User, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	client *Client
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	return listAll[model.User](ctx, r.client, usersPath, "users")
}

func (r *userRepository) Create(ctx context.Context, draft model.UserDraft) (model.User, error) {
	var user model.User
	err := r.client.doJSON(ctx, http.MethodPost, usersPath, nil, draft, &user)
	return user, err
}

func (r *userRepository) Update(ctx context.Context, id string, draft model.UserDraft) (model.User, error) {
	var user model.User
	err := r.client.doJSON(ctx, http.MethodPut, itemPath(usersPath, id), nil, draft, &user)
	return user, err
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, itemPath(usersPath, id), nil, nil, nil)
}
