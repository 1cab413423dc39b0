package mockbackend

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahaburak/would-watch/internal/model"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type tokenIssuer struct {
	secret []byte
}

func (t *tokenIssuer) issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *tokenIssuer) verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errBadCredential
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errBadCredential
	}
	return sub, nil
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) signUp(ctx *gin.Context) {
	var req credentialsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || len(req.Password) < 6 {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid signup payload"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	acc, err := s.store.createAccount(strings.ToLower(req.Email), hash)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "email already registered"})
		return
	}

	s.respondTokens(ctx, http.StatusCreated, acc)
}

func (s *Server) login(ctx *gin.Context) {
	var req credentialsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid login payload"})
		return
	}

	acc, ok := s.store.accountByEmail(strings.ToLower(req.Email))
	if !ok || bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)) != nil {
		// One answer for "no such user" and "wrong password".
		ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	s.respondTokens(ctx, http.StatusOK, acc)
}

func (s *Server) respondTokens(ctx *gin.Context, status int, acc *account) {
	access, err := s.tokens.issue(acc.ID, accessTokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	refresh, err := s.tokens.issue(acc.ID, refreshTokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	created := acc.CreatedAt
	ctx.JSON(status, model.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: model.User{
			ID:        acc.ID,
			Email:     acc.Email,
			CreatedAt: &created,
		},
	})
}

const userIDKey = "user_id"

func (s *Server) requireAuth(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	userID, err := s.tokens.verify(raw)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
		return
	}

	ctx.Set(userIDKey, userID)
	ctx.Next()
}

func currentUserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
