package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	appauth "github.com/gpmendes7/bookstoremanager-course/internal/application/auth"
	appauthor "github.com/gpmendes7/bookstoremanager-course/internal/application/author"
	apppublisher "github.com/gpmendes7/bookstoremanager-course/internal/application/publisher"
	appuser "github.com/gpmendes7/bookstoremanager-course/internal/application/user"
	domainauth "github.com/gpmendes7/bookstoremanager-course/internal/domain/auth"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/messaging"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/persistence/redis"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/persistence/sqlstore"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/handler"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/middleware"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/router"
	"github.com/gpmendes7/bookstoremanager-course/pkg/jwt"
	"github.com/gpmendes7/bookstoremanager-course/pkg/mq"
	"github.com/gpmendes7/bookstoremanager-course/pkg/tracing"
)

// app 组装完成的应用
type app struct {
	Engine *gin.Engine
	Users  *appuser.Service
}

// newApp 手动依赖注入
// 依赖链：Repository ← Service ← Handler ← Router
// 与wire.go中的injector产出相同的对象图
func newApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	fail := func(err error) (*app, func(), error) {
		cleanup()
		return nil, nil, err
	}

	// 1. 基础设施
	shutdownTracer, err := provideTracer(cfg)
	if err != nil {
		return fail(err)
	}
	cleanups = append(cleanups, shutdownTracer)

	db, closeDB, err := provideDB(cfg)
	if err != nil {
		return fail(err)
	}
	cleanups = append(cleanups, closeDB)

	sessions, closeRedis, err := provideSessionStore(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	cleanups = append(cleanups, closeRedis)

	events, closeBroker := provideEventPublisher(cfg)
	cleanups = append(cleanups, closeBroker)

	// 2. 仓储
	authorRepo := sqlstore.NewAuthorRepository(db)
	publisherRepo := sqlstore.NewPublisherRepository(db)
	userRepo := sqlstore.NewUserRepository(db)

	// 3. 应用层
	encoder := providePasswordEncoder()
	jwtManager := provideJWTManager(cfg)
	authorService := appauthor.NewService(authorRepo, events)
	publisherService := apppublisher.NewService(publisherRepo, events)
	userService := appuser.NewService(userRepo, encoder, events)
	authService := appauth.NewService(domainauth.NewVerifier(userRepo), encoder, jwtManager, sessions)

	// 4. 接口层
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, authService)
	engine := router.New(cfg, router.Handlers{
		Author:    handler.NewAuthorHandler(authorService),
		Publisher: handler.NewPublisherHandler(publisherService),
		User:      handler.NewUserHandler(userService, authService),
	}, authMiddleware)

	return &app{Engine: engine, Users: userService}, cleanup, nil
}

func provideTracer(cfg *config.Config) (func(), error) {
	if !cfg.Tracing.Enabled {
		return func() {}, nil
	}

	shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to shutdown tracer")
		}
	}, nil
}

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := sqlstore.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := sqlstore.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}, nil
}

// provideSessionStore Redis未启用时返回nil：登录不保存会话，登出不吊销Token
func provideSessionStore(ctx context.Context, cfg *config.Config) (appauth.SessionStore, func(), error) {
	if !cfg.Redis.Enabled {
		log.Warn().Msg("redis disabled, sessions and token revocation are off")
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return redis.NewSessionStore(client), func() { _ = client.Close() }, nil
}

// provideEventPublisher 消息队列未启用或连接失败时使用NopPublisher
// 事件发布不影响业务结果，所以代理不可用不阻止启动
func provideEventPublisher(cfg *config.Config) (event.Publisher, func()) {
	if !cfg.MQ.Enabled {
		return event.NopPublisher{}, func() {}
	}

	broker, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		log.Warn().Err(err).Msg("message broker unavailable, domain events will be dropped")
		return event.NopPublisher{}, func() {}
	}

	publisher := messaging.NewEventPublisher(broker, messaging.Options{
		MaxFailures:    cfg.MQ.BreakerFailures,
		BreakerTimeout: cfg.MQ.BreakerTimeout,
	})
	return publisher, func() { _ = broker.Close() }
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func providePasswordEncoder() user.PasswordEncoder {
	return user.NewBcryptEncoder(bcrypt.DefaultCost)
}

// seedAdmin 按配置创建初始管理员
func seedAdmin(ctx context.Context, cfg config.AdminConfig, users *appuser.Service) error {
	if cfg.Username == "" {
		return nil
	}

	created, err := users.EnsureAdmin(ctx, appuser.UserDTO{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Username: cfg.Username,
		Password: cfg.Password,
		Gender:   user.GenderMale,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		log.Info().Str("username", cfg.Username).Msg("admin user created")
	}
	return nil
}
