// Package service_room wraps the backend's room operations: listing,
// creation, membership, voting and match retrieval. One method per
// backend operation, no retries, no caching.
package service_room

import (
	"context"
	"fmt"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/model"
)

type Service struct {
	api api.Caller
}

func New(caller api.Caller) *Service {
	return &Service{api: caller}
}

type roomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

func (s *Service) Rooms(ctx context.Context) ([]model.Room, error) {
	resp, err := api.Get[roomsResponse](ctx, s.api, "/rooms")
	if err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (s *Service) Create(ctx context.Context, name string, isPublic bool, participants []string) (model.Room, error) {
	req := model.CreateRoomRequest{
		Name:         name,
		IsPublic:     isPublic,
		Participants: participants,
	}
	resp, err := api.Post[model.CreateRoomResponse](ctx, s.api, "/rooms", req)
	if err != nil {
		return model.Room{}, err
	}
	return resp.Room, nil
}

func (s *Service) Join(ctx context.Context, roomID string) (model.Room, error) {
	return api.Post[model.Room](ctx, s.api, fmt.Sprintf("/rooms/%s/join", roomID), struct{}{})
}

func (s *Service) Room(ctx context.Context, roomID string) (model.Room, error) {
	return api.Get[model.Room](ctx, s.api, fmt.Sprintf("/rooms/%s", roomID))
}

// SubmitVote records a yes/no/maybe for a media id. Match detection is
// the backend's job; the response's is_match flag is the only signal.
func (s *Service) SubmitVote(ctx context.Context, roomID string, mediaID int, vote model.VoteType) (model.VoteResponse, error) {
	req := model.VoteRequest{MediaID: mediaID, Vote: vote}
	return api.Post[model.VoteResponse](ctx, s.api, fmt.Sprintf("/rooms/%s/vote", roomID), req)
}

type matchesResponse struct {
	Matches []model.RoomMatch `json:"matches"`
}

func (s *Service) Matches(ctx context.Context, roomID string) ([]model.RoomMatch, error) {
	resp, err := api.Get[matchesResponse](ctx, s.api, fmt.Sprintf("/rooms/%s/matches", roomID))
	if err != nil {
		return nil, err
	}
	return resp.Matches, nil
}
