// Package router 注册HTTP路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gpmendes7/bookstoremanager-course/docs"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/handler"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/middleware"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	Author    *handler.AuthorHandler
	Publisher *handler.PublisherHandler
	User      *handler.UserHandler
}

// New 创建Gin引擎并注册全部路由
//
//	GET  /ping                 健康检查
//	GET  /metrics              Prometheus指标
//	GET  /swagger/*any         API文档
//	/api/v1/users              用户（创建、登录、刷新公开，其余需登录，删除需管理员）
//	/api/v1/authors            作者（查询需登录，写操作需管理员）
//	/api/v1/publishers         出版社（同作者）
func New(cfg *config.Config, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 生产环境建议关闭或加访问控制
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := middleware.RequireAuthority(user.RoleAdmin.Authority())

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			// 公开接口
			users.POST("", auth.OptionalAuth(), h.User.Create)
			users.POST("/authenticate", h.User.Authenticate)
			users.POST("/refresh", h.User.Refresh)

			// 需要登录
			authorized := users.Group("")
			authorized.Use(auth.RequireAuth())
			authorized.POST("/logout", h.User.Logout)
			authorized.GET("", h.User.FindAll)
			authorized.GET("/:id", h.User.FindByID)
			authorized.PUT("/:id", h.User.Update)
			authorized.DELETE("/:id", admin, h.User.Delete)
		}

		authors := v1.Group("/authors")
		authors.Use(auth.RequireAuth())
		{
			authors.GET("", h.Author.FindAll)
			authors.GET("/:id", h.Author.FindByID)
			authors.POST("", admin, h.Author.Create)
			authors.PUT("/:id", admin, h.Author.Update)
			authors.DELETE("/:id", admin, h.Author.Delete)
		}

		publishers := v1.Group("/publishers")
		publishers.Use(auth.RequireAuth())
		{
			publishers.GET("", h.Publisher.FindAll)
			publishers.GET("/:id", h.Publisher.FindByID)
			publishers.POST("", admin, h.Publisher.Create)
			publishers.PUT("/:id", admin, h.Publisher.Update)
			publishers.DELETE("/:id", admin, h.Publisher.Delete)
		}
	}

	return r
}
