package dto

import (
	"time"

	"github.com/ForumApp/user-service/internal/model"
	"github.com/google/uuid"
)

type GetUserDto struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	DisplayName *string     `json:"display_name"`
	AvatarURL   *string     `json:"avatar_url"`
	Rank        *model.Rank `json:"rank"`
	Posts       int64       `json:"posts"`
	Threads     int64       `json:"threads"`
	Followers   int64       `json:"followers"`
	CreatedAt   time.Time   `json:"created_at"`
}

func GetUserDtoFromFullUser(fullUser model.FullUser) *GetUserDto {
	return &GetUserDto{
		ID: fullUser.ID,
		Username: fullUser.Username,
		DisplayName: fullUser.DisplayName,
		AvatarURL: fullUser.AvatarURL,
		Rank: fullUser.Rank,
		Posts: fullUser.Posts,
		Threads: fullUser.Threads,
		Followers: fullUser.Followers,
		CreatedAt: fullUser.CreatedAt,
	}
}
