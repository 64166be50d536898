// Bookstore Manager API
//
// @title        Bookstore Manager API
// @version      1.0
// @description  作者、出版社、用户管理与JWT认证
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/logger"
	"github.com/gpmendes7/bookstoremanager-course/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. 日志
	closer, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("db_driver", cfg.Database.Driver).
		Bool("redis", cfg.Redis.Enabled).
		Bool("mq", cfg.MQ.Enabled).
		Msg("config loaded")

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 依赖注入
	a, cleanup, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// 4. 初始管理员
	if err := seedAdmin(ctx, cfg.Admin, a.Users); err != nil {
		return err
	}

	// 5. 启动HTTP服务，收到信号后优雅关闭
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      a.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
