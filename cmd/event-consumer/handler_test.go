package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/pkg/mq"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("正常事件", func(t *testing.T) {
		d := mq.Delivery{
			RoutingKey: "author.created",
			Body:       []byte(`{"type":"author.created","entity":"author","id":7,"occurred_at":"2024-01-02T03:04:05Z"}`),
		}

		e, err := decodeEvent(d)

		require.NoError(t, err)
		assert.Equal(t, "author.created", e.Type)
		assert.Equal(t, event.EntityAuthor, e.Entity)
		assert.Equal(t, uint(7), e.ID)
		assert.Equal(t, 2024, e.OccurredAt.Year())
	})

	t.Run("缺少type时使用routing key", func(t *testing.T) {
		d := mq.Delivery{RoutingKey: "user.deleted", Body: []byte(`{"entity":"user","id":3}`)}

		e, err := decodeEvent(d)

		require.NoError(t, err)
		assert.Equal(t, "user.deleted", e.Type)
	})

	t.Run("非法JSON", func(t *testing.T) {
		_, err := decodeEvent(mq.Delivery{Body: []byte("not json")})
		assert.Error(t, err)
	})
}

func TestHandleEvent(t *testing.T) {
	t.Run("非法消息确认丢弃", func(t *testing.T) {
		err := handleEvent(context.Background(), mq.Delivery{RoutingKey: "x", Body: []byte("{")})
		assert.NoError(t, err)
	})

	t.Run("正常消息", func(t *testing.T) {
		body := []byte(`{"type":"publisher.updated","entity":"publisher","id":1}`)
		err := handleEvent(context.Background(), mq.Delivery{RoutingKey: "publisher.updated", Body: body})
		assert.NoError(t, err)
	})
}
