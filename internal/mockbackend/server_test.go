package mockbackend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/model"
	"github.com/tahaburak/would-watch/internal/realtime"
	service_auth "github.com/tahaburak/would-watch/internal/service/auth"
	service_movie "github.com/tahaburak/would-watch/internal/service/movie"
	service_profile "github.com/tahaburak/would-watch/internal/service/profile"
	service_room "github.com/tahaburak/would-watch/internal/service/room"
	service_social "github.com/tahaburak/would-watch/internal/service/social"
)

type testBase string

func (b testBase) BaseURL() string { return string(b) }

// user is one authenticated client against the test server, with its
// own token pipeline, the way two devices would talk to one backend.
type user struct {
	id      string
	email   string
	client  *api.Client
	auth    *service_auth.Service
	rooms   *service_room.Service
	movies  *service_movie.Service
	social  *service_social.Service
	profile *service_profile.Service
}

type backendResources struct {
	server *httptest.Server
	base   testBase
	ctx    context.Context
}

func initBackendResources() *backendResources {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(New("test-secret", logger).Handler())

	return &backendResources{
		server: server,
		base:   testBase(server.URL + "/api"),
		ctx:    context.Background(),
	}
}

func (r *backendResources) signUp(t provider.T, name string) *user {
	client := api.New(r.base)
	u := &user{
		email:   fmt.Sprintf("%s-%s@test.dev", name, uuid.NewString()[:8]),
		client:  client,
		auth:    service_auth.New(client, client),
		rooms:   service_room.New(client),
		movies:  service_movie.New(client),
		social:  service_social.New(client),
		profile: service_profile.New(client),
	}

	resp, err := u.auth.SignUp(r.ctx, u.email, "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	u.id = resp.User.ID
	return u
}

type BackendSuite struct {
	suite.Suite
}

func (s *BackendSuite) TestAuthFlow(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")

	t.Run("duplicate signup is rejected", func(t provider.T) {
		fresh := api.New(r.base)
		_, err := service_auth.New(fresh, fresh).SignUp(r.ctx, alice.email, "secret1")

		var serverErr *api.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 400, serverErr.StatusCode)
	})

	t.Run("wrong password maps to unauthorized", func(t provider.T) {
		fresh := api.New(r.base)
		_, err := service_auth.New(fresh, fresh).Login(r.ctx, alice.email, "wrongpass")
		assert.ErrorIs(t, err, api.ErrUnauthorized)
	})

	t.Run("login issues a working token", func(t provider.T) {
		fresh := api.New(r.base)
		auth := service_auth.New(fresh, fresh)
		resp, err := auth.Login(r.ctx, alice.email, "secret1")
		require.NoError(t, err)
		assert.Equal(t, alice.id, resp.User.ID)

		_, err = service_room.New(fresh).Rooms(r.ctx)
		assert.NoError(t, err)
	})

	t.Run("requests without a token are unauthorized", func(t provider.T) {
		fresh := api.New(r.base)
		_, err := service_room.New(fresh).Rooms(r.ctx)
		assert.ErrorIs(t, err, api.ErrUnauthorized)
	})
}

func (s *BackendSuite) TestRoomMatchFlow(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")
	bob := r.signUp(t, "bob")

	room, err := alice.rooms.Create(r.ctx, "Movie night", true, nil)
	require.NoError(t, err)
	assert.Equal(t, alice.id, room.HostID)
	assert.Equal(t, model.RoomStatusActive, room.Status)
	assert.Contains(t, room.Participants, alice.id)

	joined, err := bob.rooms.Join(r.ctx, room.ID)
	require.NoError(t, err)
	assert.Contains(t, joined.Participants, bob.id)

	// First yes vote: no match yet.
	resp, err := alice.rooms.SubmitVote(r.ctx, room.ID, 603, model.VoteYes)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.MatchFound())

	// Second distinct yes voter completes the match.
	resp, err = bob.rooms.SubmitVote(r.ctx, room.ID, 603, model.VoteYes)
	require.NoError(t, err)
	assert.True(t, resp.MatchFound())

	matches, err := alice.rooms.Matches(r.ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "The Matrix", matches[0].Movie.Title)
	assert.ElementsMatch(t, []string{alice.id, bob.id}, matches[0].Voters)

	// A matched title does not match twice.
	resp, err = alice.rooms.SubmitVote(r.ctx, room.ID, 603, model.VoteYes)
	require.NoError(t, err)
	assert.False(t, resp.MatchFound())

	t.Run("vote in an unknown room is a 404", func(t provider.T) {
		_, err := alice.rooms.SubmitVote(r.ctx, "nope", 603, model.VoteYes)
		var serverErr *api.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 404, serverErr.StatusCode)
	})
}

func (s *BackendSuite) TestMediaEndpoints(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")

	results, err := alice.movies.Search(r.ctx, "matrix")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Matrix", results[0].Title)
	assert.Equal(t, "1999", results[0].ReleaseYear())

	popular, err := alice.movies.Popular(r.ctx)
	require.NoError(t, err)
	require.NotEmpty(t, popular)
	assert.Equal(t, "Inception", popular[0].Title)

	movie, err := alice.movies.Details(r.ctx, 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", movie.Title)

	_, err = alice.movies.Details(r.ctx, 999999)
	var serverErr *api.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 404, serverErr.StatusCode)
}

func (s *BackendSuite) TestSocialFlow(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")
	bob := r.signUp(t, "bob")

	found, err := alice.social.SearchUsers(r.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bob.id, found[0].ID)
	assert.False(t, found[0].IsFollowing)

	_, err = alice.social.Follow(r.ctx, bob.id)
	require.NoError(t, err)

	found, err = alice.social.SearchUsers(r.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, found[0].IsFollowing)

	friends, err := alice.social.Friends(r.ctx)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.id, friends[0].ID)

	_, err = alice.social.Unfollow(r.ctx, bob.id)
	require.NoError(t, err)

	friends, err = alice.social.Friends(r.ctx)
	require.NoError(t, err)
	assert.Empty(t, friends)

	t.Run("following an unknown user is a 404", func(t provider.T) {
		_, err := alice.social.Follow(r.ctx, "nope")
		var serverErr *api.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 404, serverErr.StatusCode)
	})
}

func (s *BackendSuite) TestProfileFlow(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")

	profile, err := alice.profile.Profile(r.ctx)
	require.NoError(t, err)
	assert.Equal(t, alice.email, profile.Email)
	assert.Equal(t, model.PrivacyEveryone, profile.Privacy)

	username := "alice-renamed"
	updated, err := alice.profile.Update(r.ctx, &username, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", updated.Username)

	privacy := model.PrivacyFriends
	updated, err = alice.profile.Update(r.ctx, nil, &privacy)
	require.NoError(t, err)
	assert.Equal(t, model.PrivacyFriends, updated.Privacy)
	assert.Equal(t, "alice-renamed", updated.Username)
}

func (s *BackendSuite) TestRoomChannel(t provider.T) {
	t.Parallel()
	r := initBackendResources()
	defer r.server.Close()
	alice := r.signUp(t, "alice")
	bob := r.signUp(t, "bob")

	room, err := alice.rooms.Create(r.ctx, "Movie night", true, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	channel := realtime.NewChannel(r.base, alice.client, logger)
	defer channel.Close()

	require.NoError(t, channel.Subscribe(room.ID))
	// Idempotent: a second subscribe opens no second connection.
	require.NoError(t, channel.Subscribe(room.ID))

	joined := waitForEvent(t, channel.Events(), realtime.EventParticipantJoined)
	assert.Equal(t, alice.id, joined.UserID)

	_, err = bob.rooms.Join(r.ctx, room.ID)
	require.NoError(t, err)

	_, err = alice.rooms.SubmitVote(r.ctx, room.ID, 680, model.VoteYes)
	require.NoError(t, err)
	resp, err := bob.rooms.SubmitVote(r.ctx, room.ID, 680, model.VoteYes)
	require.NoError(t, err)
	require.True(t, resp.MatchFound())

	match := waitForEvent(t, channel.Events(), realtime.EventMatchFound)
	assert.Equal(t, room.ID, match.RoomID)
	assert.Equal(t, 680, match.MovieID)
}

func waitForEvent(t provider.T, events <-chan realtime.Event, want realtime.EventType) realtime.Event {
	deadline := time.After(3 * time.Second)
	for {
		select {
		case e := <-events:
			if e.Type == want {
				return e
			}
		case <-deadline:
			t.Fatalf("no %s event within deadline", want)
			return realtime.Event{}
		}
	}
}

func TestBackendSuite(t *testing.T) {
	suite.RunSuite(t, new(BackendSuite))
}
