// Package service_profile reads and updates the caller's own account
// settings.
package service_profile

import (
	"context"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/model"
)

type Service struct {
	api api.Caller
}

func New(caller api.Caller) *Service {
	return &Service{api: caller}
}

func (s *Service) Profile(ctx context.Context) (model.UserProfile, error) {
	return api.Get[model.UserProfile](ctx, s.api, "/me/profile")
}

// Update sends only the fields the caller wants changed; nil means
// "leave as is".
func (s *Service) Update(ctx context.Context, username *string, privacy *model.PrivacySetting) (model.UserProfile, error) {
	req := model.UpdateProfileRequest{
		Username: username,
		Privacy:  privacy,
	}
	resp, err := api.Put[model.UpdateProfileResponse](ctx, s.api, "/me/profile", req)
	if err != nil {
		return model.UserProfile{}, err
	}
	return resp.Profile, nil
}
