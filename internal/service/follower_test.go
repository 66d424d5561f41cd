package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ForumApp/user-service/internal/dto"
	"github.com/ForumApp/user-service/internal/model"
	"github.com/ForumApp/user-service/internal/repository"
	"github.com/ForumApp/user-service/internal/repository/postgres"
	"github.com/ForumApp/user-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type fakeFollowerRepo struct {
	created []model.Follower
	deleted []model.Follower
	err     error
}

func (f *fakeFollowerRepo) FindUserFollowers(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FullFollower, error) {
	return nil, nil
}

func (f *fakeFollowerRepo) Create(ctx context.Context, follower model.Follower) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, follower)
	return nil
}

func (f *fakeFollowerRepo) Delete(ctx context.Context, follower model.Follower) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, follower)
	return nil
}

type fakeUserRepo struct {
	username string
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullUser, error) {
	return &model.FullUser{
		ID: id,
		Username: f.username,
	}, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.FullUser, error) {
	return nil, nil
}

type fakeCache struct {
	deletedKeys []string
	patterns    []string
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.deletedKeys = append(c.deletedKeys, keys...)
	return redis.NewIntCmd(ctx)
}

func (c *fakeCache) DelByPattern(ctx context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func newTestFollowerService(followerRepo *fakeFollowerRepo, cache *fakeCache) *followerService {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User: &fakeUserRepo{username: "alice"},
			Follower: followerRepo,
		},
		Redis: &redisrepo.RedisRepository{
			Default: cache,
		},
	}

	return newFollowerService(zap.NewNop(), repo, nil, nil, nil).(*followerService)
}

func TestApplyFollowEventCreates(t *testing.T) {
	followerRepo := &fakeFollowerRepo{}
	cache := &fakeCache{}
	s := newTestFollowerService(followerRepo, cache)

	follow := dto.RabbitMQFollowDto{
		UserID: uuid.New(),
		FollowerID: uuid.New(),
		Following: true,
	}
	s.applyFollowEvent(context.Background(), follow)

	if len(followerRepo.created) != 1 {
		t.Fatalf("created %d relations, want 1", len(followerRepo.created))
	}
	if len(followerRepo.deleted) != 0 {
		t.Fatalf("deleted %d relations, want 0", len(followerRepo.deleted))
	}
	relation := followerRepo.created[0]
	if relation.UserID != follow.UserID || relation.FollowerID != follow.FollowerID {
		t.Errorf("created relation %v does not match event %v", relation, follow)
	}
}

func TestApplyFollowEventDeletes(t *testing.T) {
	followerRepo := &fakeFollowerRepo{}
	cache := &fakeCache{}
	s := newTestFollowerService(followerRepo, cache)

	follow := dto.RabbitMQFollowDto{
		UserID: uuid.New(),
		FollowerID: uuid.New(),
		Following: false,
	}
	s.applyFollowEvent(context.Background(), follow)

	if len(followerRepo.deleted) != 1 {
		t.Fatalf("deleted %d relations, want 1", len(followerRepo.deleted))
	}
	if len(followerRepo.created) != 0 {
		t.Fatalf("created %d relations, want 0", len(followerRepo.created))
	}
}

func TestApplyFollowEventInvalidatesCaches(t *testing.T) {
	followerRepo := &fakeFollowerRepo{}
	cache := &fakeCache{}
	s := newTestFollowerService(followerRepo, cache)

	userID := uuid.New()
	s.applyFollowEvent(context.Background(), dto.RabbitMQFollowDto{
		UserID: userID,
		FollowerID: uuid.New(),
		Following: true,
	})

	wantPattern := redisrepo.UserFollowersPattern(userID.String())
	if len(cache.patterns) != 1 || cache.patterns[0] != wantPattern {
		t.Errorf("invalidated patterns %v, want [%s]", cache.patterns, wantPattern)
	}

	wantKeys := map[string]bool{
		redisrepo.UserKey(userID.String()): true,
		redisrepo.UsernameKey("alice"): true,
	}
	if len(cache.deletedKeys) != len(wantKeys) {
		t.Fatalf("deleted keys %v, want %d keys", cache.deletedKeys, len(wantKeys))
	}
	for _, key := range cache.deletedKeys {
		if !wantKeys[key] {
			t.Errorf("unexpected deleted key %q", key)
		}
	}
}

func TestApplyFollowEventRepoErrorSkipsInvalidation(t *testing.T) {
	followerRepo := &fakeFollowerRepo{err: errors.New("connection refused")}
	cache := &fakeCache{}
	s := newTestFollowerService(followerRepo, cache)

	s.applyFollowEvent(context.Background(), dto.RabbitMQFollowDto{
		UserID: uuid.New(),
		FollowerID: uuid.New(),
		Following: true,
	})

	if len(cache.patterns) != 0 || len(cache.deletedKeys) != 0 {
		t.Errorf("caches were invalidated after a failed event: patterns %v, keys %v", cache.patterns, cache.deletedKeys)
	}
}
