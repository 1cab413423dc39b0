package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tahaburak/would-watch/internal/api"
	"github.com/tahaburak/would-watch/internal/config"
	"github.com/tahaburak/would-watch/internal/controller"
	"github.com/tahaburak/would-watch/internal/deeplink"
	"github.com/tahaburak/would-watch/internal/realtime"
	service_auth "github.com/tahaburak/would-watch/internal/service/auth"
	service_movie "github.com/tahaburak/would-watch/internal/service/movie"
	service_profile "github.com/tahaburak/would-watch/internal/service/profile"
	service_room "github.com/tahaburak/would-watch/internal/service/room"
	service_social "github.com/tahaburak/would-watch/internal/service/social"
)

// app wires the whole client together: one API client shared by every
// service, controllers on top, the room channel and the deep link
// router at the edges.
type app struct {
	cfg     *config.Config
	client  *api.Client
	channel *realtime.Channel
	router  *deeplink.Router

	auth    *controller.Auth
	rooms   *controller.Rooms
	movies  *controller.Movies
	social  *controller.Social
	profile *controller.Profile
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	client := api.New(cfg,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	a := &app{
		cfg:     cfg,
		client:  client,
		channel: realtime.NewChannel(cfg, client, logger),
		auth:    controller.NewAuth(service_auth.New(client, client)),
		rooms:   controller.NewRooms(service_room.New(client)),
		movies:  controller.NewMovies(service_movie.New(client)),
		social:  controller.NewSocial(service_social.New(client)),
		profile: controller.NewProfile(service_profile.New(client)),
	}

	a.router = deeplink.NewRouter(a, logger)
	a.auth.SetOnAuthenticated(func() {
		a.router.ReplayPending(true)
	})
	return a
}

// OpenRoom and OpenProfile make app a deeplink.Navigator; the console
// client just announces where a link would have taken the user.
func (a *app) OpenRoom(roomID string) {
	fmt.Printf("Opening room %s\n", roomID)
	if err := a.channel.Subscribe(roomID); err != nil {
		fmt.Printf("Could not subscribe to room updates: %v\n", err)
	}
}

func (a *app) OpenProfile(userID string) {
	fmt.Printf("Opening profile %s\n", userID)
}

func (a *app) Close() {
	a.channel.Close()
}
