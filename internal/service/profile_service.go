package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"adminconsole/internal/model"
	"adminconsole/internal/repository"
)

var ErrEmptyProfileUpdate = errors.New("nothing to update")

type ProfileService interface {
	GetProfile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, req model.ProfileUpdate) (model.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context) (model.Profile, error) {
	p, err := s.repo.Get(ctx)
	return p, errors.Wrap(err, "get profile")
}

// UpdateProfile trims the submitted fields and rejects a request that changes nothing
func (s *profileService) UpdateProfile(ctx context.Context, req model.ProfileUpdate) (model.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" && req.Email == "" && req.Password == "" {
		return model.Profile{}, ErrEmptyProfileUpdate
	}
	p, err := s.repo.Update(ctx, req)
	return p, errors.Wrap(err, "update profile")
}
