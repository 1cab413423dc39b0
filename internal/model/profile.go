package model

import "time"

type PrivacySetting string

const (
	PrivacyEveryone PrivacySetting = "everyone"
	PrivacyFriends  PrivacySetting = "friends"
	PrivacyNone     PrivacySetting = "none"
)

func (p PrivacySetting) DisplayName() string {
	switch p {
	case PrivacyEveryone:
		return "Everyone"
	case PrivacyFriends:
		return "Friends Only"
	case PrivacyNone:
		return "Private"
	}
	return string(p)
}

type UserProfile struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	AvatarURL *string        `json:"avatar_url,omitempty"`
	Privacy   PrivacySetting `json:"privacy"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
}

type UpdateProfileRequest struct {
	Username *string         `json:"username,omitempty"`
	Privacy  *PrivacySetting `json:"privacy,omitempty"`
}

type UpdateProfileResponse struct {
	Profile UserProfile `json:"profile"`
}
