package model

import (
	"time"

	"github.com/google/uuid"
)

type Follower struct {
	UserID     uuid.UUID `json:"user_id"`
	FollowerID uuid.UUID `json:"follower_id"`
}

// FullFollower is one row of a user's follower listing: the follower's
// profile card fields joined with their rank and counters.
type FullFollower struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Rank        *Rank     `json:"rank"`
	Posts       int64     `json:"posts"`
	Threads     int64     `json:"threads"`
	Followers   int64     `json:"followers"`
	JoinedAt    time.Time `json:"joined_at"`
}
