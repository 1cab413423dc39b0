package mockbackend

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tahaburak/would-watch/internal/model"
)

type mediaListDTO struct {
	Results []model.Movie `json:"results"`
}

func (s *Server) searchMedia(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusOK, mediaListDTO{Results: []model.Movie{}})
		return
	}

	results := s.store.searchMovies(query)
	if results == nil {
		results = []model.Movie{}
	}
	ctx.JSON(http.StatusOK, mediaListDTO{Results: results})
}

func (s *Server) popularMedia(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mediaListDTO{Results: s.store.popularMovies()})
}

func (s *Server) mediaDetails(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("media_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid media id"})
		return
	}

	movie, err := s.store.movieDetails(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "media not found"})
		return
	}
	ctx.JSON(http.StatusOK, movie)
}
