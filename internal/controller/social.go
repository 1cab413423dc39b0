package controller

import (
	"context"
	"sync"

	"github.com/tahaburak/would-watch/internal/model"
)

type SocialService interface {
	Friends(ctx context.Context) ([]model.Friend, error)
	SearchUsers(ctx context.Context, query string) ([]model.Friend, error)
	Follow(ctx context.Context, userID string) (model.FollowResponse, error)
	Unfollow(ctx context.Context, userID string) (model.FollowResponse, error)
}

// Social drives the friends list and user search. Follow flips the
// search result entry and refreshes the friends list; unfollow removes
// the friend locally without a reload.
type Social struct {
	svc SocialService

	mu            sync.Mutex
	friends       []model.Friend
	searchResults []model.Friend
	searchQuery   string
	loading       bool
	errMsg        string
	searchSeq     uint64
}

func NewSocial(svc SocialService) *Social {
	return &Social{svc: svc}
}

func (s *Social) LoadFriends(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	friends, err := s.svc.Friends(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = userMessage(err)
		return
	}
	s.friends = friends
}

func (s *Social) SearchUsers(ctx context.Context, query string) {
	s.mu.Lock()
	s.searchQuery = query
	if query == "" {
		s.searchResults = nil
		s.mu.Unlock()
		return
	}
	s.searchSeq++
	seq := s.searchSeq
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	results, err := s.svc.SearchUsers(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq {
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = userMessage(err)
		return
	}
	s.searchResults = results
}

func (s *Social) Follow(ctx context.Context, user model.Friend) {
	_, err := s.svc.Follow(ctx, user.ID)
	if err != nil {
		s.mu.Lock()
		s.errMsg = userMessage(err)
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	for i := range s.searchResults {
		if s.searchResults[i].ID == user.ID {
			s.searchResults[i].IsFollowing = true
		}
	}
	s.mu.Unlock()

	s.LoadFriends(ctx)
}

func (s *Social) Unfollow(ctx context.Context, user model.Friend) {
	_, err := s.svc.Unfollow(ctx, user.ID)
	if err != nil {
		s.mu.Lock()
		s.errMsg = userMessage(err)
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.friends {
		if s.friends[i].ID == user.ID {
			s.friends = append(s.friends[:i], s.friends[i+1:]...)
			break
		}
	}
	for i := range s.searchResults {
		if s.searchResults[i].ID == user.ID {
			s.searchResults[i].IsFollowing = false
		}
	}
}

func (s *Social) FriendsList() []model.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Friend, len(s.friends))
	copy(out, s.friends)
	return out
}

func (s *Social) SearchResults() []model.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Friend, len(s.searchResults))
	copy(out, s.searchResults)
	return out
}

func (s *Social) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Social) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
