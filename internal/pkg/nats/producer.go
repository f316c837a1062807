package nats

import (
	"encoding/json"
	"fmt"

	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
)

// Producer handles publishing JSON messages to NATS subjects
type Producer struct {
	client *Client
}

// NewProducer creates a new NATS producer over an existing client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals the message and sends it to the specified subject.
// Publishing is fire-and-forget from the caller's perspective.
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message",
		logger.String("subject", subject))
	return nil
}
