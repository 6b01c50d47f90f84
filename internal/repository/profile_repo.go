package repository

import (
	"context"
	"net/http"

	"adminconsole/internal/model"
)

const profilePath = "/api/me"

// ProfileRepository reads and writes the operator's own account
type ProfileRepository interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, req model.ProfileUpdate) (model.Profile, error)
}

type profileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Get(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := r.client.doJSON(ctx, http.MethodGet, profilePath, nil, nil, &p)
	return p, err
}

func (r *profileRepository) Update(ctx context.Context, req model.ProfileUpdate) (model.Profile, error) {
	var p model.Profile
	err := r.client.doJSON(ctx, http.MethodPut, profilePath, nil, req, &p)
	return p, err
}
