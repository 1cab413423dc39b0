package model

import "time"

type Friend struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	IsFollowing bool       `json:"is_following"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type FollowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
