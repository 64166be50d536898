package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func TestSessionStore_Session(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	t.Run("保存并读取", func(t *testing.T) {
		err := store.SaveSession(ctx, 1, map[string]interface{}{"username": "rodrigopeleias", "user_id": 1}, time.Hour)
		require.NoError(t, err)

		session, err := store.GetSession(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "rodrigopeleias", session["username"])
		assert.Equal(t, time.Hour, mr.TTL("session:1"))
	})

	t.Run("过期后不存在", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)

		_, err := store.GetSession(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, store.SaveSession(ctx, 2, map[string]interface{}{"username": "admin"}, time.Hour))
		require.NoError(t, store.DeleteSession(ctx, 2))

		_, err := store.GetSession(ctx, 2)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestSessionStore_Blacklist(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	revoked, err := store.IsInBlacklist(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "token", time.Minute))
	revoked, err = store.IsInBlacklist(ctx, "token")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = store.IsInBlacklist(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionStore_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.IsInBlacklist(context.Background(), "token")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host := mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewClient(context.Background(), config.RedisConfig{Host: host, Port: 1, DialTimeout: 100 * time.Millisecond})
	assert.Error(t, err)
}
