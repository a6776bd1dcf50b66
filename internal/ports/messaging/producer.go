package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Producer struct {
	sender            MessageSender
	emailQueueURL     string
	directoryQueueURL string
}

func NewProducer(sender MessageSender, emailQueueURL, directoryQueueURL string) *Producer {
	return &Producer{
		sender:            sender,
		emailQueueURL:     emailQueueURL,
		directoryQueueURL: directoryQueueURL,
	}
}

func NewSQSProducer(client SQSClient, emailQueueURL, directoryQueueURL string) *Producer {
	return NewProducer(&SQSSender{client: client}, emailQueueURL, directoryQueueURL)
}

func (p *Producer) PublishNotification(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.emailQueueURL, body)
}

func (p *Producer) PublishDirectorySync(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.directoryQueueURL, body)
}

func (p *Producer) publish(ctx context.Context, destination string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	// Enrich the current span with employee_id if available
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		var payload struct {
			EmployeeID int64 `json:"employeeId"`
		}
		if err := json.Unmarshal(b, &payload); err == nil && payload.EmployeeID != 0 {
			span.SetAttributes(attribute.Int64("app.employeeId", payload.EmployeeID))
		}
	}

	if err := p.sender.SendMessage(ctx, destination, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
