package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// HandlerFunc processes one decoded event. A returned error nacks the message.
type HandlerFunc func(ctx context.Context, event *Event) error

// Consume subscribes to every topic and feeds decoded events to handle until ctx is done.
func Consume(ctx context.Context, sub message.Subscriber, topics []string, logger *slog.Logger, handle HandlerFunc) error {
	for _, topic := range topics {
		messages, err := sub.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
		go consumeTopic(ctx, topic, messages, logger, handle)
	}
	return nil
}

func consumeTopic(ctx context.Context, topic string, messages <-chan *message.Message, logger *slog.Logger, handle HandlerFunc) {
	for msg := range messages {
		var event Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			// malformed payloads would be redelivered forever
			logger.Error("Dropping undecodable event", "topic", topic, "message_uuid", msg.UUID, "error", err)
			msg.Ack()
			continue
		}

		if err := handle(ctx, &event); err != nil {
			logger.Warn("Event handler failed", "topic", topic, "event_id", event.ID, "error", err)
			msg.Nack()
			continue
		}
		msg.Ack()
	}
}

// AuditLog is a handler that records every event in the service log.
func AuditLog(logger *slog.Logger) HandlerFunc {
	return func(ctx context.Context, event *Event) error {
		logger.InfoContext(ctx, "Domain event",
			"event_id", event.ID,
			"type", event.Type,
			"source", event.Source,
			"timestamp", event.Timestamp)
		return nil
	}
}

// Topics lists the topics for types under p's prefix.
func (p *WatermillPublisher) Topics(types ...EventType) []string {
	topics := make([]string, len(types))
	for i, t := range types {
		topics[i] = p.Topic(t)
	}
	return topics
}
