package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ForumApp/user-service/internal/dto"
	"github.com/ForumApp/user-service/internal/followers"
	"github.com/ForumApp/user-service/internal/i18n"
	"github.com/ForumApp/user-service/internal/model"
	"github.com/ForumApp/user-service/internal/rabbitmq"
	"github.com/ForumApp/user-service/internal/repository"
	"github.com/ForumApp/user-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const followersCacheTTL = time.Minute * 15

type followerService struct {
	logger *zap.Logger
	repo *repository.Repository
	rabbitmq *rabbitmq.MQConn
	bundle *i18n.Bundle
	users User
}

func newFollowerService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, bundle *i18n.Bundle, users User) Follower {
	return &followerService{
		logger: logger,
		repo: repo,
		rabbitmq: mq,
		bundle: bundle,
		users: users,
	}
}

type GetFollowerListInput struct {
	Username string
	ViewerID *uuid.UUID
	Locale   string
	Limit    int
	Offset   int
}

func (s *followerService) GetFollowerList(ctx context.Context, input GetFollowerListInput) (*followers.ListResult, error) {
	profile, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	rows, err := s.findFollowersPage(ctx, profile.ID, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	viewer := followers.Viewer{
		IsProfileOwner: input.ViewerID != nil && *input.ViewerID == profile.ID,
	}

	records := make([]followers.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromFollower(row))
	}

	printer := s.bundle.Printer(input.Locale)
	result, err := followers.Render(viewer, followers.Profile{
		Username: profile.Username,
		DisplayUsername: profile.DisplayedUsername(),
	}, records, printer)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render follower list for user(@%s): %s", profile.Username, err.Error())
		return nil, ErrInternal
	}

	return result, nil
}

func (s *followerService) findFollowersPage(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullFollower, error) {
	key := redisrepo.UserFollowersKey(userID.String(), limit, offset)
	cached, err := redisrepo.GetMany[model.FullFollower](s.repo.Redis.Default, ctx, key)
	if err == nil {
		return cached, nil
	}

	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get followers page(%s) from redis: %s", key, err.Error())
		return nil, ErrInternal
	}

	rows, err := s.repo.Postgres.Follower.FindUserFollowers(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find followers of user(%s) from postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, key, rows, followersCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set followers page(%s) in redis: %s", key, err.Error())
		return nil, ErrInternal
	}

	return rows, nil
}

func recordFromFollower(follower *model.FullFollower) followers.Record {
	record := followers.Record{
		Username: follower.Username,
		ProfileURL: fmt.Sprintf("/users/@%s", follower.Username),
		AvatarURL: viper.GetString("avatars.default_url"),
		JoinedOn: follower.JoinedAt,
		Posts: follower.Posts,
		Threads: follower.Threads,
		Followers: follower.Followers,
	}

	if follower.DisplayName != nil && *follower.DisplayName != "" {
		record.Username = *follower.DisplayName
	}

	if follower.AvatarURL != nil {
		record.AvatarURL = *follower.AvatarURL
	}

	if follower.Rank != nil {
		record.Title = &follower.Rank.Title
		record.RankCSSClass = follower.Rank.CSSClass
	}

	return record
}

func (s *followerService) StartConsumeFollows(ctx context.Context) {
	deliveries, err := s.rabbitmq.Consume(rabbitmq.FOLLOWS_QUEUE)
	if err != nil {
		s.logger.Sugar().Errorf("failed to consume rabbitmq queue(%s): %s", rabbitmq.FOLLOWS_QUEUE, err.Error())
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			var follow dto.RabbitMQFollowDto
			if err := json.Unmarshal(delivery.Body, &follow); err != nil {
				s.logger.Sugar().Errorf("failed to unmarshal follow event: %s", err.Error())
				continue
			}

			s.applyFollowEvent(ctx, follow)
		}
	}
}

func (s *followerService) applyFollowEvent(ctx context.Context, follow dto.RabbitMQFollowDto) {
	relation := model.Follower{
		UserID: follow.UserID,
		FollowerID: follow.FollowerID,
	}

	var err error
	if follow.Following {
		err = s.repo.Postgres.Follower.Create(ctx, relation)
	} else {
		err = s.repo.Postgres.Follower.Delete(ctx, relation)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to apply follow event(%s -> %s): %s", follow.FollowerID.String(), follow.UserID.String(), err.Error())
		return
	}

	s.invalidateFollowerCaches(ctx, follow.UserID)
}

func (s *followerService) invalidateFollowerCaches(ctx context.Context, userID uuid.UUID) {
	if err := s.repo.Redis.DelByPattern(ctx, redisrepo.UserFollowersPattern(userID.String())); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate followers cache of user(%s): %s", userID.String(), err.Error())
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) for cache invalidation: %s", userID.String(), err.Error())
		return
	}

	if err := s.repo.Redis.Del(ctx, redisrepo.UserKey(userID.String()), redisrepo.UsernameKey(user.Username)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate user(%s) cache: %s", userID.String(), err.Error())
	}
}
