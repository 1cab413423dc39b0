package mockbackend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahaburak/would-watch/internal/model"
	"github.com/tahaburak/would-watch/internal/realtime"
)

type roomListDTO struct {
	Rooms []model.Room `json:"rooms"`
}

type matchListDTO struct {
	Matches []model.RoomMatch `json:"matches"`
}

func (s *Server) listRooms(ctx *gin.Context) {
	rooms := s.store.roomsFor(currentUserID(ctx))
	if rooms == nil {
		rooms = []model.Room{}
	}
	ctx.JSON(http.StatusOK, roomListDTO{Rooms: rooms})
}

func (s *Server) createRoom(ctx *gin.Context) {
	var req model.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Name == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "room name is required"})
		return
	}

	room := s.store.createRoom(currentUserID(ctx), req.Name, req.IsPublic, req.Participants)
	s.logger.Info("room created", "room_id", room.ID, "host_id", room.HostID)
	ctx.JSON(http.StatusCreated, model.CreateRoomResponse{Room: room})
}

func (s *Server) getRoom(ctx *gin.Context) {
	room, err := s.store.room(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		return
	}
	ctx.JSON(http.StatusOK, room)
}

func (s *Server) joinRoom(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	room, err := s.store.joinRoom(roomID, currentUserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		return
	}
	ctx.JSON(http.StatusOK, room)
}

func (s *Server) vote(ctx *gin.Context) {
	var req model.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid vote payload"})
		return
	}
	switch req.Vote {
	case model.VoteYes, model.VoteNo, model.VoteMaybe:
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "unknown vote type"})
		return
	}

	roomID := ctx.Param("room_id")
	userID := currentUserID(ctx)
	matched, match, err := s.store.recordVote(roomID, userID, req.MediaID, req.Vote)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		return
	}

	if matched {
		s.logger.Info("match found", "room_id", roomID, "media_id", match.Movie.ID)
		s.hub.broadcast(roomID, realtime.Event{
			Type:    realtime.EventMatchFound,
			RoomID:  roomID,
			MovieID: match.Movie.ID,
		})
	}

	ctx.JSON(http.StatusOK, model.VoteResponse{Success: true, IsMatch: &matched})
}

func (s *Server) listMatches(ctx *gin.Context) {
	matches, err := s.store.matches(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		return
	}
	if matches == nil {
		matches = []model.RoomMatch{}
	}
	ctx.JSON(http.StatusOK, matchListDTO{Matches: matches})
}
