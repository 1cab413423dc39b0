// Package service_auth exchanges credentials with the identity provider
// and owns the pipeline's bearer token lifecycle.
package service_auth

import (
	"context"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/model"
)

// TokenStore is where the active access token lives; in production it is
// the request pipeline itself.
type TokenStore interface {
	SetAuthToken(token string)
}

type Service struct {
	api    api.Caller
	tokens TokenStore
}

func New(caller api.Caller, tokens TokenStore) *Service {
	return &Service{
		api:    caller,
		tokens: tokens,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	resp, err := api.Post[model.AuthResponse](ctx, s.api, "/auth/login", model.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}

	s.tokens.SetAuthToken(resp.AccessToken)
	return resp, nil
}

func (s *Service) SignUp(ctx context.Context, email, password string) (model.AuthResponse, error) {
	resp, err := api.Post[model.AuthResponse](ctx, s.api, "/auth/signup", model.SignUpRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}

	s.tokens.SetAuthToken(resp.AccessToken)
	return resp, nil
}

// Logout clears the stored token. Tokens are held in memory only, so
// there is nothing else to revoke client-side.
func (s *Service) Logout(ctx context.Context) error {
	s.tokens.SetAuthToken("")
	return nil
}
