package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/api/apitest"
	"github.com/tahaburak/would-watch/internal/model"
	service_social "github.com/tahaburak/would-watch/internal/service/social"
)

type socialResources struct {
	caller *apitest.MockCaller
	social *Social
	ctx    context.Context
}

func initSocialResources(provider.T) *socialResources {
	caller := apitest.NewCaller()
	return &socialResources{
		caller: caller,
		social: NewSocial(service_social.New(caller)),
		ctx:    context.Background(),
	}
}

type friendListBody struct {
	Friends []model.Friend `json:"friends"`
}

type userListBody struct {
	Users []model.Friend `json:"users"`
}

func friendFixture(id, username string, following bool) model.Friend {
	return model.Friend{ID: id, Username: username, IsFollowing: following}
}

type SocialControllerSuite struct {
	suite.Suite
}

func (s *SocialControllerSuite) TestLoadFriends(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)
	r.caller.On(http.MethodGet, "/me/following").Return(friendListBody{
		Friends: []model.Friend{friendFixture("u2", "bob", true)},
	})

	r.social.LoadFriends(r.ctx)

	require.Empty(t, r.social.ErrorMessage())
	friends := r.social.FriendsList()
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)
}

func (s *SocialControllerSuite) TestSearchUsersEmptyQuery(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)

	r.social.SearchUsers(r.ctx, "")

	assert.Zero(t, r.caller.Calls())
	assert.Empty(t, r.social.SearchResults())
}

func (s *SocialControllerSuite) TestFollowFlipsResultAndReloadsFriends(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)
	bob := friendFixture("u2", "bob", false)

	r.caller.On(http.MethodGet, "/users/search?q=bob").Return(userListBody{Users: []model.Friend{bob}})
	r.social.SearchUsers(r.ctx, "bob")
	require.Len(t, r.social.SearchResults(), 1)

	r.caller.On(http.MethodPost, "/follows/u2").Return(model.FollowResponse{Success: true})
	r.caller.On(http.MethodGet, "/me/following").Return(friendListBody{
		Friends: []model.Friend{friendFixture("u2", "bob", true)},
	})

	r.social.Follow(r.ctx, bob)

	require.Empty(t, r.social.ErrorMessage())
	assert.True(t, r.social.SearchResults()[0].IsFollowing)
	assert.Len(t, r.social.FriendsList(), 1)
	assert.Equal(t, 1, r.caller.CallsTo(http.MethodGet, "/me/following"))
}

func (s *SocialControllerSuite) TestFollowFailureKeepsState(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)
	bob := friendFixture("u2", "bob", false)

	r.caller.On(http.MethodGet, "/users/search?q=bob").Return(userListBody{Users: []model.Friend{bob}})
	r.social.SearchUsers(r.ctx, "bob")

	r.caller.On(http.MethodPost, "/follows/u2").
		ReturnError(&api.ServerError{StatusCode: 404, Message: "user not found"})

	r.social.Follow(r.ctx, bob)

	assert.Equal(t, "Server error (404): user not found", r.social.ErrorMessage())
	assert.False(t, r.social.SearchResults()[0].IsFollowing)
	assert.Zero(t, r.caller.CallsTo(http.MethodGet, "/me/following"))
}

func (s *SocialControllerSuite) TestUnfollowRemovesLocally(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)
	bob := friendFixture("u2", "bob", true)

	r.caller.On(http.MethodGet, "/me/following").Return(friendListBody{Friends: []model.Friend{bob}})
	r.social.LoadFriends(r.ctx)
	require.Len(t, r.social.FriendsList(), 1)

	r.caller.On(http.MethodDelete, "/follows/u2").Return(model.FollowResponse{Success: true})

	r.social.Unfollow(r.ctx, bob)

	// Removal is local; no second friends request.
	assert.Empty(t, r.social.FriendsList())
	assert.Equal(t, 1, r.caller.CallsTo(http.MethodGet, "/me/following"))
}

func (s *SocialControllerSuite) TestUnfollowFlipsSearchResult(t provider.T) {
	t.Parallel()
	r := initSocialResources(t)
	bob := friendFixture("u2", "bob", true)

	r.caller.On(http.MethodGet, "/users/search?q=bob").Return(userListBody{Users: []model.Friend{bob}})
	r.social.SearchUsers(r.ctx, "bob")

	r.caller.On(http.MethodDelete, "/follows/u2").Return(model.FollowResponse{Success: true})
	r.social.Unfollow(r.ctx, bob)

	require.Len(t, r.social.SearchResults(), 1)
	assert.False(t, r.social.SearchResults()[0].IsFollowing)
}

func TestSocialControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(SocialControllerSuite))
}
