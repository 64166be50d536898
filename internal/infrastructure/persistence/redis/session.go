package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// SessionStore 会话存储
// 1. 登录会话：session:{user_id}（hash），TTL与Refresh Token一致
// 2. Token黑名单：blacklist:{token}，TTL与Access Token一致，过期自动清理
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

// SaveSession 保存用户会话
// HSet与Expire放在同一个事务管道里，避免写入没有TTL的会话
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := sessionKey(userID)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, sessionData)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return redisError(err, "Failed to save session")
	}
	return nil
}

// GetSession 获取用户会话，不存在返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, userID uint) (map[string]string, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, redisError(err, "Failed to load session")
	}

	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	return result, nil
}

// DeleteSession 删除用户会话（登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return redisError(err, "Failed to delete session")
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return redisError(err, "Failed to revoke token")
	}
	return nil
}

// IsInBlacklist 检查Token是否已被吊销
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, redisError(err, "Failed to check token blacklist")
	}
	return exists > 0, nil
}

func redisError(err error, message string) error {
	appErr := apperrors.Wrap(err, message)
	appErr.Code = apperrors.ErrCodeRedisError
	return appErr
}
