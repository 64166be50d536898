package main

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/pkg/mq"
)

// handleEvent 解析事件并记录审计日志
// 无法解析的消息直接确认丢弃，避免反复重新入队
func handleEvent(_ context.Context, d mq.Delivery) error {
	e, err := decodeEvent(d)
	if err != nil {
		log.Warn().
			Err(err).
			Str("routing_key", d.RoutingKey).
			Msg("dropping malformed event")
		return nil
	}

	log.Info().
		Str("type", e.Type).
		Str("entity", e.Entity).
		Uint("id", e.ID).
		Time("occurred_at", e.OccurredAt).
		Msg("audit")
	return nil
}

func decodeEvent(d mq.Delivery) (event.Event, error) {
	var e event.Event
	if err := json.Unmarshal(d.Body, &e); err != nil {
		return event.Event{}, err
	}
	if e.Type == "" {
		e.Type = d.RoutingKey
	}
	return e, nil
}
