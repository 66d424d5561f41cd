package service

import (
	"context"

	"github.com/ForumApp/user-service/internal/followers"
	"github.com/ForumApp/user-service/internal/i18n"
	"github.com/ForumApp/user-service/internal/model"
	"github.com/ForumApp/user-service/internal/rabbitmq"
	"github.com/ForumApp/user-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullUser, error)
	FindByUsername(ctx context.Context, username string) (*model.FullUser, error)
}

type Follower interface {
	GetFollowerList(ctx context.Context, input GetFollowerListInput) (*followers.ListResult, error)
	StartConsumeFollows(ctx context.Context)
}

type Service struct {
	User
	Follower
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, bundle *i18n.Bundle) *Service {
	userService := newUserService(logger, repo)
	return &Service{
		User: userService,
		Follower: newFollowerService(logger, repo, mq, bundle, userService),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	go s.Follower.StartConsumeFollows(ctx)
}
