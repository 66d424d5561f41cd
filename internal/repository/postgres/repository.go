package postgres

import (
	"context"
	"fmt"

	"github.com/ForumApp/user-service/internal/config"
	"github.com/ForumApp/user-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

// Querier is the subset of pgxpool.Pool the repositories use.
type Querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullUser, error)
	FindByUsername(ctx context.Context, username string) (*model.FullUser, error)
}

type Follower interface {
	FindUserFollowers(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullFollower, error)
	Create(ctx context.Context, follower model.Follower) error
	Delete(ctx context.Context, follower model.Follower) error
}

type PostgresRepository struct {
	User
	Follower
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User: newUserRepo(db),
		Follower: newFollowerRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}
