package mockbackend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahaburak/would-watch/internal/model"
)

type friendListDTO struct {
	Friends []model.Friend `json:"friends"`
}

type userListDTO struct {
	Users []model.Friend `json:"users"`
}

func (s *Server) listFollowing(ctx *gin.Context) {
	friends := s.store.following(currentUserID(ctx))
	if friends == nil {
		friends = []model.Friend{}
	}
	ctx.JSON(http.StatusOK, friendListDTO{Friends: friends})
}

func (s *Server) searchUsers(ctx *gin.Context) {
	users := s.store.searchUsers(currentUserID(ctx), ctx.Query("q"))
	if users == nil {
		users = []model.Friend{}
	}
	ctx.JSON(http.StatusOK, userListDTO{Users: users})
}

func (s *Server) follow(ctx *gin.Context) {
	targetID := ctx.Param("user_id")
	if err := s.store.follow(currentUserID(ctx), targetID); err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		return
	}
	ctx.JSON(http.StatusOK, model.FollowResponse{Success: true})
}

func (s *Server) unfollow(ctx *gin.Context) {
	targetID := ctx.Param("user_id")
	if err := s.store.unfollow(currentUserID(ctx), targetID); err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		return
	}
	ctx.JSON(http.StatusOK, model.FollowResponse{Success: true})
}
