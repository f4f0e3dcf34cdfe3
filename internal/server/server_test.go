package server

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-categories/internal/config"
)

type fakeJobs struct {
	err error
}

func (f fakeJobs) Start() error {
	return f.err
}

func newUnusedRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func TestStartJobs_FailureClosesRedis(t *testing.T) {
	logger := zerolog.Nop()
	client := newUnusedRedisClient()

	err := startJobs(&logger, client, fakeJobs{err: errors.New("boom")})
	require.ErrorContains(t, err, "failed to start job service")

	assert.ErrorIs(t, client.Close(), redis.ErrClosed)
}

func TestStartJobs_SuccessKeepsRedisOpen(t *testing.T) {
	logger := zerolog.Nop()
	client := newUnusedRedisClient()

	require.NoError(t, startJobs(&logger, client, fakeJobs{}))

	assert.NoError(t, client.Close())
}

func TestNew_WithoutRedis(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)
	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)

	assert.Error(t, s.Start())
	assert.NoError(t, s.Shutdown(context.Background()))
}
