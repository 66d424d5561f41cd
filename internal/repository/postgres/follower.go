package postgres

import (
	"context"
	"time"

	"github.com/ForumApp/user-service/internal/model"
	"github.com/google/uuid"
)

type followerRepo struct {
	db Querier
}

func newFollowerRepo(db Querier) Follower {
	return &followerRepo{
		db: db,
	}
}

func (r *followerRepo) FindUserFollowers(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullFollower, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`
		SELECT
		u.id, u.username, u.display_name, u.avatar_url, r.title, r.css_class, u.posts, u.threads, u.followers, u.created_at
		FROM followers f
		JOIN users u ON f.follower_id = u.id
		LEFT JOIN ranks r ON u.rank_id = r.id
		WHERE f.user_id = $1
		ORDER BY u.username ASC
		LIMIT $2 OFFSET $3
		`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followers []*model.FullFollower
	for rows.Next() {
		var (
			follower model.FullFollower
			rankTitle *string
			rankCSSClass *string
		)
		if err := rows.Scan(
			&follower.ID,
			&follower.Username,
			&follower.DisplayName,
			&follower.AvatarURL,
			&rankTitle,
			&rankCSSClass,
			&follower.Posts,
			&follower.Threads,
			&follower.Followers,
			&follower.JoinedAt,
		); err != nil {
			return nil, err
		}

		if rankTitle != nil {
			follower.Rank = &model.Rank{
				Title: *rankTitle,
				CSSClass: rankCSSClass,
			}
		}

		followers = append(followers, &follower)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return followers, nil
}

func (r *followerRepo) Create(ctx context.Context, follower model.Follower) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		"INSERT INTO followers(user_id, follower_id, created_at) VALUES($1, $2, $3) ON CONFLICT DO NOTHING",
		follower.UserID,
		follower.FollowerID,
		time.Now(),
	)
	if err != nil {
		return err
	}

	// A replayed follow event conflicts with the existing relation;
	// the counter must only move when a row was actually inserted.
	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	if _, err := tx.Exec(
		ctx,
		"UPDATE users SET followers = followers + 1 WHERE id = $1",
		follower.UserID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *followerRepo) Delete(ctx context.Context, follower model.Follower) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		"DELETE FROM followers WHERE user_id = $1 AND follower_id = $2",
		follower.UserID,
		follower.FollowerID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	if _, err := tx.Exec(
		ctx,
		"UPDATE users SET followers = GREATEST(followers - 1, 0) WHERE id = $1",
		follower.UserID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
