// Package auth 登录、刷新与登出用例
package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	domainauth "github.com/gpmendes7/bookstoremanager-course/internal/domain/auth"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/jwt"
	"github.com/gpmendes7/bookstoremanager-course/pkg/metrics"
)

// SessionStore 会话与Token黑名单存储
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error
	GetSession(ctx context.Context, userID uint) (map[string]string, error)
	DeleteSession(ctx context.Context, userID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// sessionRefreshToken 会话中保存的Refresh Token字段
const sessionRefreshToken = "refresh_token"

// Service 认证服务
type Service struct {
	verifier   *domainauth.Verifier
	encoder    user.PasswordEncoder
	jwtManager *jwt.Manager
	sessions   SessionStore
}

// NewService 创建认证服务
func NewService(
	verifier *domainauth.Verifier,
	encoder user.PasswordEncoder,
	jwtManager *jwt.Manager,
	sessions SessionStore,
) *Service {
	return &Service{
		verifier:   verifier,
		encoder:    encoder,
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// AuthenticationRequest 登录请求
type AuthenticationRequest struct {
	Username string
	Password string
}

// AuthenticationResponse 登录响应
type AuthenticationResponse struct {
	JwtToken     string `json:"jwtToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Authenticate 校验用户名密码并签发Token对
func (s *Service) Authenticate(ctx context.Context, req AuthenticationRequest) (_ *AuthenticationResponse, err error) {
	defer func() { metrics.RecordAuthentication(err) }()

	// 1. 按用户名加载认证主体
	principal, err := s.verifier.LoadUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	// 2. 比对密码
	if err := s.encoder.Matches(principal.PasswordHash, req.Password); err != nil {
		return nil, err
	}

	// 3. 签发Token对
	tokenPair, err := s.jwtManager.GenerateToken(principal.UserID, principal.Username, principal.Authorities)
	if err != nil {
		return nil, err
	}

	// 4. 保存会话，有效期与Refresh Token一致
	sessionData := map[string]interface{}{
		"user_id":  principal.UserID,
		"username": principal.Username,
		"login_at": time.Now().Unix(),
	}
	sessionData[sessionRefreshToken] = tokenPair.RefreshToken
	if s.sessions != nil {
		if err := s.sessions.SaveSession(ctx, principal.UserID, sessionData, s.jwtManager.RefreshTokenTTL()); err != nil {
			// 会话保存失败不影响登录
			log.Warn().Err(err).Uint("user_id", principal.UserID).Msg("failed to save session")
		}
	}

	return &AuthenticationResponse{
		JwtToken:     tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// Refresh 使用Refresh Token换取新的Access Token
// 1. 校验Refresh Token
// 2. 会话必须存在且属于这个Refresh Token（登出或重新登录后旧Token失效）
// 3. 按用户当前状态重新加载权限，已删除的用户无法刷新
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthenticationResponse, error) {
	claims, err := s.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if s.sessions != nil {
		session, err := s.sessions.GetSession(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if session[sessionRefreshToken] != refreshToken {
			return nil, apperrors.ErrInvalidToken
		}
	}

	principal, err := s.verifier.LoadUserByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	// 用户名被其他账号占用
	if principal.UserID != claims.UserID {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(principal.UserID, principal.Username, principal.Authorities)
	if err != nil {
		return nil, err
	}

	return &AuthenticationResponse{
		JwtToken:     accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

// Logout 删除会话并让当前Access Token失效
// 会话删除后Refresh Token也无法再刷新
func (s *Service) Logout(ctx context.Context, userID uint, accessToken string) error {
	if s.sessions == nil {
		return nil
	}

	// 1. 删除会话
	if err := s.sessions.DeleteSession(ctx, userID); err != nil {
		return err
	}

	// 2. Access Token加入黑名单，直到其自然过期
	return s.sessions.AddToBlacklist(ctx, accessToken, s.jwtManager.AccessTokenTTL())
}

// IsRevoked 判断Token是否已登出
func (s *Service) IsRevoked(ctx context.Context, token string) (bool, error) {
	if s.sessions == nil {
		return false, nil
	}
	return s.sessions.IsInBlacklist(ctx, token)
}
