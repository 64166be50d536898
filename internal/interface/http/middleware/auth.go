package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/jwt"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

// Context中的用户信息key
const (
	ContextUserID      = "user_id"
	ContextUsername    = "username"
	ContextAuthorities = "authorities"
	ContextToken       = "access_token"
)

// RevocationChecker 判断Token是否已登出
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Bearer Token
// 2. 验证签名与有效期（只接受Access Token）
// 3. 检查Token黑名单
// 4. 将用户信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	revocation RevocationChecker
}

// NewAuthMiddleware revocation为nil时不检查黑名单
func NewAuthMiddleware(jwtManager *jwt.Manager, revocation RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		revocation: revocation,
	}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("/api/v1/authors")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 提取Token
		tokenString, err := bearerToken(c)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		// 2. 验证Token
		claims, err := m.jwtManager.ParseAccessToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		// 3. 检查黑名单
		if m.revocation != nil {
			revoked, err := m.revocation.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if revoked {
				response.Error(c, apperrors.ErrInvalidToken)
				c.Abort()
				return
			}
		}

		// 4. 注入用户信息
		setClaims(c, claims, tokenString)
		c.Next()
	}
}

// OptionalAuth 有合法Token则注入用户信息，否则作为匿名用户继续
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err == nil {
			if claims, err := m.jwtManager.ParseAccessToken(tokenString); err == nil {
				if m.notRevoked(c, tokenString) {
					setClaims(c, claims, tokenString)
				}
			}
		}
		c.Next()
	}
}

// notRevoked 黑名单查询失败时按匿名处理
func (m *AuthMiddleware) notRevoked(c *gin.Context, tokenString string) bool {
	if m.revocation == nil {
		return true
	}
	revoked, err := m.revocation.IsRevoked(c.Request.Context(), tokenString)
	if err != nil {
		log.Warn().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("revocation check failed, treating request as anonymous")
		return false
	}
	return !revoked
}

// RequireAuthority 要求拥有指定权限，需放在RequireAuth之后
//
//	authors.POST("", authMiddleware.RequireAuth(), middleware.RequireAuthority("ROLE_ADMIN"), h.Create)
func RequireAuthority(authority string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasAuthority(c, authority) {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	// 格式：Authorization: Bearer <token>
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperrors.ErrInvalidToken
	}
	return parts[1], nil
}

func setClaims(c *gin.Context, claims *jwt.Claims, token string) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextAuthorities, claims.Authorities)
	c.Set(ContextToken, token)
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetUserID 未登录返回0
func GetUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// GetUsername 未登录返回空串
func GetUsername(c *gin.Context) string {
	return c.GetString(ContextUsername)
}

// GetToken 当前请求的Access Token
func GetToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}

// HasAuthority 当前用户是否拥有指定权限
func HasAuthority(c *gin.Context, authority string) bool {
	for _, a := range c.GetStringSlice(ContextAuthorities) {
		if a == authority {
			return true
		}
	}
	return false
}
