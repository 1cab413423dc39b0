// Package service_social covers the follow graph: listing friends,
// searching users, follow and unfollow. The target user id travels in
// the URL path, never the body; the backend requires it that way.
package service_social

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/model"
)

type Service struct {
	api api.Caller
}

func New(caller api.Caller) *Service {
	return &Service{api: caller}
}

type friendsResponse struct {
	Friends []model.Friend `json:"friends"`
}

func (s *Service) Friends(ctx context.Context) ([]model.Friend, error) {
	resp, err := api.Get[friendsResponse](ctx, s.api, "/me/following")
	if err != nil {
		return nil, err
	}
	return resp.Friends, nil
}

type usersResponse struct {
	Users []model.Friend `json:"users"`
}

func (s *Service) SearchUsers(ctx context.Context, query string) ([]model.Friend, error) {
	endpoint := "/users/search?q=" + url.QueryEscape(query)
	resp, err := api.Get[usersResponse](ctx, s.api, endpoint)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (s *Service) Follow(ctx context.Context, userID string) (model.FollowResponse, error) {
	return api.Post[model.FollowResponse](ctx, s.api, fmt.Sprintf("/follows/%s", userID), struct{}{})
}

func (s *Service) Unfollow(ctx context.Context, userID string) (model.FollowResponse, error) {
	return api.Delete[model.FollowResponse](ctx, s.api, fmt.Sprintf("/follows/%s", userID))
}
