package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"

	"workforce.service/internal/core"
	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/messaging"
	"workforce.service/internal/ports/repository"
	"workforce.service/internal/worker"
)

// EmailProcessor handles jobs from the email queue: one status-changed
// event becomes one email to the affected employee. Delivery state is
// tracked per event id so a redelivered message is not sent twice.
type EmailProcessor struct {
	emailService  core.EmailService
	notifications repository.NotificationRepository
}

// NewProcessor sets up a new processor for handling email-related jobs.
func NewProcessor(emailService core.EmailService, notifications repository.NotificationRepository) *EmailProcessor {
	return &EmailProcessor{
		emailService:  emailService,
		notifications: notifications,
	}
}

// Process is the main entry point for handling a message from the email queue.
// It tries to send an email and will tell the worker to retry if something goes wrong.
func (p *EmailProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.StatusChangedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal status changed event")
		return false, 0, err // Do not retry on malformed message
	}

	if err := p.notifications.Create(ctx, event.EventID, event.EmployeeID); err != nil {
		return true, 10, fmt.Errorf("failed to register notification job: %w", err)
	}

	status, retryCount, err := p.notifications.GetStatus(ctx, event.EventID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get notification status: %w", err)
	}

	if status == model.NotificationCompleted {
		log.Ctx(ctx).Info().Str("event_id", event.EventID).Msg("Email already sent. Skipping.")
		return false, 0, nil
	}

	err = p.emailService.SendStatusUpdate(ctx, event.EmployeeEmail, event.EmployeeName, event.NewStatus)
	if err != nil {
		newCount := retryCount + 1
		p.notifications.UpdateStatus(ctx, event.EventID, model.NotificationPending, newCount)

		delay := worker.CalculateBackoff(newCount)
		return true, delay, err
	}

	err = p.notifications.UpdateStatus(ctx, event.EventID, model.NotificationCompleted, 0)
	return false, 0, err
}
