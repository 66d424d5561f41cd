package dto

import (
	"github.com/ForumApp/user-service/internal/followers"
	"github.com/google/uuid"
)

type FollowerCardDto struct {
	Username       string  `json:"username"`
	ProfileURL     string  `json:"profile_url"`
	AvatarURL      string  `json:"avatar_url"`
	Title          *string `json:"title"`
	RankCSSClass   *string `json:"rank_css_class"`
	JoinedOn       string  `json:"joined_on"`
	JoinedLabel    string  `json:"joined_label"`
	PostsLabel     string  `json:"posts_label"`
	ThreadsLabel   string  `json:"threads_label"`
	FollowersLabel string  `json:"followers_label"`
}

type FollowerListResponse struct {
	TotalCount   int                 `json:"total_count"`
	Headline     string              `json:"headline"`
	EmptyMessage *string             `json:"empty_message,omitempty"`
	Rows         [][]FollowerCardDto `json:"rows"`
}

func FollowerListResponseFromResult(result *followers.ListResult) *FollowerListResponse {
	response := &FollowerListResponse{
		TotalCount: result.TotalCount,
		Headline: result.Headline,
		EmptyMessage: result.EmptyMessage,
		Rows: [][]FollowerCardDto{},
	}

	for _, row := range result.Rows {
		cards := make([]FollowerCardDto, 0, len(row))
		for _, card := range row {
			cards = append(cards, FollowerCardDto{
				Username: card.Username,
				ProfileURL: card.ProfileURL,
				AvatarURL: card.AvatarURL,
				Title: card.Title,
				RankCSSClass: card.RankCSSClass,
				JoinedOn: card.JoinedOn.Format("2006-01-02"),
				JoinedLabel: card.JoinedLabel,
				PostsLabel: card.PostsLabel,
				ThreadsLabel: card.ThreadsLabel,
				FollowersLabel: card.FollowersLabel,
			})
		}
		response.Rows = append(response.Rows, cards)
	}

	return response
}

type RabbitMQFollowDto struct {
	UserID     uuid.UUID `json:"user_id"`
	FollowerID uuid.UUID `json:"follower_id"`
	Following  bool      `json:"following"`
}
