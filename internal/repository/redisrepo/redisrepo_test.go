package redisrepo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *RedisRepoTestSuite) TestOTPCheckThenConsume() {
	ctx := context.Background()
	store := NewOTPStore(s.client, time.Minute)

	s.Require().NoError(store.Save(ctx, 7, "123456"))
	s.ErrorIs(store.Check(ctx, 7, "000000"), domain.ErrInvalidConfirmation)
	s.Require().NoError(store.Check(ctx, 7, "123456"))
	// сверка код не гасит
	s.Require().NoError(store.Check(ctx, 7, "123456"))

	s.Require().NoError(store.Consume(ctx, 7, "123456"))
	s.ErrorIs(store.Check(ctx, 7, "123456"), domain.ErrInvalidConfirmation)
	s.False(s.mr.Exists(otpAttemptsKey(7)))
	// повторное гашение не ошибка
	s.NoError(store.Consume(ctx, 7, "123456"))
}

func (s *RedisRepoTestSuite) TestOTPConsumeKeepsReissuedCode() {
	ctx := context.Background()
	store := NewOTPStore(s.client, time.Minute)

	s.Require().NoError(store.Save(ctx, 5, "111111"))
	s.Require().NoError(store.Check(ctx, 5, "111111"))
	s.Require().NoError(store.Save(ctx, 5, "555555"))

	s.Require().NoError(store.Consume(ctx, 5, "111111"))
	s.NoError(store.Check(ctx, 5, "555555"))
}

func (s *RedisRepoTestSuite) TestOTPExpires() {
	ctx := context.Background()
	store := NewOTPStore(s.client, time.Minute)

	s.Require().NoError(store.Save(ctx, 1, "111111"))
	s.mr.FastForward(2 * time.Minute)
	s.ErrorIs(store.Check(ctx, 1, "111111"), domain.ErrInvalidConfirmation)
}

func (s *RedisRepoTestSuite) TestOTPInvalidatedAfterMaxAttempts() {
	ctx := context.Background()
	store := NewOTPStore(s.client, time.Minute)

	s.Require().NoError(store.Save(ctx, 2, "222222"))
	for range DefaultOTPMaxAttempts {
		s.ErrorIs(store.Check(ctx, 2, "999999"), domain.ErrInvalidConfirmation)
	}
	s.ErrorIs(store.Check(ctx, 2, "222222"), domain.ErrInvalidConfirmation)

	// новый код сбрасывает счетчик
	s.Require().NoError(store.Save(ctx, 2, "333333"))
	s.NoError(store.Check(ctx, 2, "333333"))
}

func (s *RedisRepoTestSuite) TestCache() {
	ctx := context.Background()
	cache := NewCache(s.client, time.Minute)

	type item struct {
		Name string `json:"name"`
	}
	var got []item
	s.ErrorIs(cache.Get(ctx, "shops:a", &got), domain.ErrRecordNotFound)

	s.Require().NoError(cache.Set(ctx, "shops:a", []item{{Name: "x"}}))
	s.Require().NoError(cache.Set(ctx, "shops:b", []item{{Name: "y"}}))
	s.Require().NoError(cache.Set(ctx, "other", []item{{Name: "z"}}))

	s.Require().NoError(cache.Get(ctx, "shops:a", &got))
	s.Equal([]item{{Name: "x"}}, got)

	s.Require().NoError(cache.DeleteByPrefix(ctx, "shops:"))
	s.False(s.mr.Exists("shops:a"))
	s.False(s.mr.Exists("shops:b"))
	s.True(s.mr.Exists("other"))
	s.NoError(cache.Ping(ctx))
}
