package helpers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

// PublishEvent marshals payload to JSON and publishes it on topic. An empty
// correlationID gets a fresh one.
func PublishEvent(ctx context.Context, publisher message.Publisher, topic string, correlationID string, payload interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	msg := message.NewMessage(uuid.NewString(), payloadBytes)
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)
	msg.Metadata.Set("topic", topic)
	msg.SetContext(ctx)

	if err := publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}

// DecodePayload unmarshals a message payload into T.
func DecodePayload[T any](msg *message.Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return payload, nil
}
