// Package events publishes entity change events to kafka so that
// downstream consumers (search indexing, notifications) can react to
// board changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Publisher emits one message per entity change. Keys follow the
// "entity.action.id" convention, e.g. "company.created.acme" or
// "job.deleted.42".
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends a change event carrying the affected entity as JSON.
func (p *Publisher) Publish(ctx context.Context, entityType, action string, id any, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s.%s.%v", entityType, action, id)),
		Value: value,
	}

	return p.writer.WriteMessages(ctx, msg)
}
