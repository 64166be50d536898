package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

const (
	issuer = "bookstoremanager"

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Manager JWT管理器
// 双Token机制：Access Token（短期，用于API鉴权）+ Refresh Token（长期，只用于换取新的Access Token）
type Manager struct {
	secret             string
	accessTokenExpire  time.Duration
	refreshTokenExpire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire, refreshTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:             secret,
		accessTokenExpire:  accessTokenExpire,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// Claims 自定义JWT Claims
type Claims struct {
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	Authorities []string `json:"authorities,omitempty"`
	TokenType   string   `json:"token_type"`
	jwt.RegisteredClaims
}

// HasAuthority 判断是否拥有指定权限（如ROLE_ADMIN）
func (c *Claims) HasAuthority(authority string) bool {
	for _, a := range c.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// TokenPair Token对（Access + Refresh）
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Access Token有效期（秒）
}

// AccessTokenTTL Access Token有效期（登出时黑名单TTL使用）
func (m *Manager) AccessTokenTTL() time.Duration {
	return m.accessTokenExpire
}

// RefreshTokenTTL Refresh Token有效期（会话TTL使用）
func (m *Manager) RefreshTokenTTL() time.Duration {
	return m.refreshTokenExpire
}

// GenerateToken 生成Token对
// authorities写入Access Token；Refresh Token只包含用户标识
func (m *Manager) GenerateToken(userID uint, username string, authorities []string) (*TokenPair, error) {
	now := time.Now()

	// 1. 生成Access Token
	accessTokenString, err := m.sign(Claims{
		UserID:           userID,
		Username:         username,
		Authorities:      authorities,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: m.registered(userID, now, m.accessTokenExpire),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to sign access token")
	}

	// 2. 生成Refresh Token
	refreshTokenString, err := m.sign(Claims{
		UserID:           userID,
		Username:         username,
		Authorities:      authorities,
		TokenType:        TokenTypeRefresh,
		RegisteredClaims: m.registered(userID, now, m.refreshTokenExpire),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to sign refresh token")
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(m.accessTokenExpire.Seconds()),
	}, nil
}

// ParseToken 解析并验证Token（签名、exp、nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// ParseAccessToken 解析Access Token（拒绝Refresh Token）
func (m *Manager) ParseAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken 解析Refresh Token（拒绝Access Token）
func (m *Manager) ParseRefreshToken(tokenString string) (*Claims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// GenerateAccessToken 单独签发Access Token（刷新时使用）
// authorities由调用方按当前用户状态提供，不沿用Refresh Token中的声明
func (m *Manager) GenerateAccessToken(userID uint, username string, authorities []string) (string, error) {
	tokenString, err := m.sign(Claims{
		UserID:           userID,
		Username:         username,
		Authorities:      authorities,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: m.registered(userID, time.Now(), m.accessTokenExpire),
	})
	if err != nil {
		return "", apperrors.Wrap(err, "Failed to sign access token")
	}
	return tokenString, nil
}

func (m *Manager) registered(userID uint, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
	}
}

func (m *Manager) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}
