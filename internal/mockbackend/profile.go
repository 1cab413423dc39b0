package mockbackend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahaburak/would-watch/internal/model"
)

func (s *Server) getProfile(ctx *gin.Context) {
	profile, err := s.store.profile(currentUserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "profile not found"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(ctx *gin.Context) {
	var req model.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid profile payload"})
		return
	}
	if req.Privacy != nil {
		switch *req.Privacy {
		case model.PrivacyEveryone, model.PrivacyFriends, model.PrivacyNone:
		default:
			ctx.JSON(http.StatusBadRequest, errorResponse{Error: "unknown privacy setting"})
			return
		}
	}

	profile, err := s.store.updateProfile(currentUserID(ctx), req.Username, req.Privacy)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "profile not found"})
		return
	}
	ctx.JSON(http.StatusOK, model.UpdateProfileResponse{Profile: profile})
}
