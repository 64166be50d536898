//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 生成的initializeApp与providers.go中的newApp产出相同的对象图

package main

import (
	"context"

	"github.com/google/wire"

	appauth "github.com/gpmendes7/bookstoremanager-course/internal/application/auth"
	appauthor "github.com/gpmendes7/bookstoremanager-course/internal/application/author"
	apppublisher "github.com/gpmendes7/bookstoremanager-course/internal/application/publisher"
	appuser "github.com/gpmendes7/bookstoremanager-course/internal/application/user"
	domainauth "github.com/gpmendes7/bookstoremanager-course/internal/domain/auth"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/persistence/sqlstore"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/handler"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/middleware"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息队列、JWT
var infrastructureSet = wire.NewSet(
	provideDB,
	provideSessionStore,
	provideEventPublisher,
	provideJWTManager,
	providePasswordEncoder,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	sqlstore.NewAuthorRepository,
	sqlstore.NewPublisherRepository,
	sqlstore.NewUserRepository,
)

// applicationSet 应用服务
var applicationSet = wire.NewSet(
	appauthor.NewService,
	apppublisher.NewService,
	appuser.NewService,
	domainauth.NewVerifier,
	appauth.NewService,
)

// interfaceSet 中间件、处理器、路由
var interfaceSet = wire.NewSet(
	wire.Bind(new(middleware.RevocationChecker), new(*appauth.Service)),
	middleware.NewAuthMiddleware,
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
	handler.NewUserHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// initializeApp Wire注入器
// 链路追踪不在对象图内，需要时另行调用provideTracer
func initializeApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(app), "Engine", "Users"),
	)
	return nil, nil, nil
}
