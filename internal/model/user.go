package model

import (
	"time"

	"github.com/google/uuid"
)

type FullUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Rank        *Rank     `json:"rank"`
	Posts       int64     `json:"posts"`
	Threads     int64     `json:"threads"`
	Followers   int64     `json:"followers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayedUsername returns the name used in third-person narration,
// falling back to the login username when no display name is set.
func (u *FullUser) DisplayedUsername() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Username
}
