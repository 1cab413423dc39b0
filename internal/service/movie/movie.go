// Package service_movie exposes the media catalogue: search, popular
// titles, and per-title details.
package service_movie

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

type resultsResponse struct {
	Results []model.Movie `json:"results"`
}

func (s *Service) Search(ctx context.Context, query string) ([]model.Movie, error) {
	endpoint := "/media/search?q=" + url.QueryEscape(query)
	resp, err := api.Get[resultsResponse](ctx, s.api, endpoint)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (s *Service) Popular(ctx context.Context) ([]model.Movie, error) {
	resp, err := api.Get[resultsResponse](ctx, s.api, "/media/popular")
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (s *Service) Details(ctx context.Context, id int) (model.Movie, error) {
	return api.Get[model.Movie](ctx, s.api, fmt.Sprintf("/media/%d", id))
}
