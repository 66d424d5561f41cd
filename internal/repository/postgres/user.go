package postgres

import (
	"context"

	"github.com/ForumApp/user-service/internal/model"
	"github.com/google/uuid"
)

type userRepo struct {
	db Querier
}

func newUserRepo(db Querier) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullUser, error) {
	return r.findOne(ctx, "u.id = $1", id)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.FullUser, error) {
	return r.findOne(ctx, "u.username = $1", username)
}

func (r *userRepo) findOne(ctx context.Context, condition string, arg interface{}) (*model.FullUser, error) {
	var (
		user model.FullUser
		rankTitle *string
		rankCSSClass *string
	)
	if err := r.db.QueryRow(
		ctx,
		`
		SELECT
		u.id, u.email, u.username, u.display_name, u.avatar_url, r.title, r.css_class, u.posts, u.threads, u.followers, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN ranks r ON u.rank_id = r.id
		WHERE `+condition+`
		`,
		arg,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.DisplayName,
		&user.AvatarURL,
		&rankTitle,
		&rankCSSClass,
		&user.Posts,
		&user.Threads,
		&user.Followers,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if rankTitle != nil {
		user.Rank = &model.Rank{
			Title: *rankTitle,
			CSSClass: rankCSSClass,
		}
	}

	return &user, nil
}
