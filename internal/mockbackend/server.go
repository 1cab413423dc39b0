// Package mockbackend is an in-memory stand-in for the production
// backend and identity provider: the full REST surface the client
// consumes plus the per-room websocket channel. It exists for the dev
// loop and end-to-end tests; nothing here persists.
package mockbackend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	store  *store
	hub    *hub
	tokens *tokenIssuer
	logger *slog.Logger
	engine *gin.Engine
}

func New(secret string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		store:  newStore(),
		hub:    newHub(logger),
		tokens: &tokenIssuer{secret: []byte(secret)},
		logger: logger,
		engine: engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	// Identity provider surface; co-located here for the mock.
	api.POST("/auth/login", s.login)
	api.POST("/auth/signup", s.signUp)

	// Channel auth travels in the query string, not a header.
	api.GET("/ws/rooms/:room_id", s.roomChannel)

	authed := api.Group("", s.requireAuth)
	{
		authed.GET("/rooms", s.listRooms)
		authed.POST("/rooms", s.createRoom)
		authed.GET("/rooms/:room_id", s.getRoom)
		authed.POST("/rooms/:room_id/join", s.joinRoom)
		authed.POST("/rooms/:room_id/vote", s.vote)
		authed.GET("/rooms/:room_id/matches", s.listMatches)

		authed.GET("/media/search", s.searchMedia)
		authed.GET("/media/popular", s.popularMedia)
		authed.GET("/media/:media_id", s.mediaDetails)

		authed.GET("/me/following", s.listFollowing)
		authed.GET("/users/search", s.searchUsers)
		authed.POST("/follows/:user_id", s.follow)
		authed.DELETE("/follows/:user_id", s.unfollow)

		authed.GET("/me/profile", s.getProfile)
		authed.PUT("/me/profile", s.updateProfile)
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}
