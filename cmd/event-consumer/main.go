// event-consumer 订阅作者、出版社、用户的变更事件并写入审计日志
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/config"
	"github.com/gpmendes7/bookstoremanager-course/internal/infrastructure/logger"
	"github.com/gpmendes7/bookstoremanager-course/pkg/mq"
)

// 订阅全部实体的全部动作
var routingKeys = []string{"author.*", "publisher.*", "user.*"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init logger")
	}
	defer closer.Close()

	if !cfg.MQ.Enabled {
		log.Warn().Msg("mq disabled, nothing to consume")
		return
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, cfg.MQ.Queue, routingKeys)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create consumer")
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Consume(ctx, handleEvent); err != nil {
		log.Error().Err(err).Msg("consumer exited")
	}
}
