package dto

import (
	"time"

	"fitfam.app/familyfit/internal/model"
)

// UpdateProfileInput represents the input for updating the user's own profile
type UpdateProfileInput struct {
	Name     *string `json:"name" form:"name"`
	Password *string `json:"password" form:"password"`
}

// ProfileResponse is returned when updating the profile or getting the current user
type ProfileResponse struct {
	User *model.User `json:"user"`
}

// PublicProfileResponse is returned when viewing another user's public profile
type PublicProfileResponse struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
