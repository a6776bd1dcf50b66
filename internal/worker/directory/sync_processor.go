package directory

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"workforce.service/internal/ports/messaging"
	"workforce.service/internal/worker"
)

// SyncProcessor handles jobs from the directory queue, which involves
// calling the legacy HR directory API. It uses a circuit breaker to avoid
// hammering the legacy system if it's having issues.
type SyncProcessor struct {
	client Client
	cb     *gobreaker.CircuitBreaker
}

// NewProcessor creates a new processor for the directory queue. It sets up
// a circuit breaker to protect the legacy API from being overwhelmed.
func NewProcessor(client Client) *SyncProcessor {
	settings := gobreaker.Settings{
		Name:        "HR-Directory-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is bigger then 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &SyncProcessor{
		client: client,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Process handles one message from the directory queue. The call goes
// through the circuit breaker and retries with exponential backoff; the
// receive count doubles as the retry counter since the mirror is
// idempotent on the legacy side (same event id, same payload).
func (p *SyncProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.StatusChangedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal directory sync event")
		return false, 0, err // Do not retry on malformed message
	}

	log.Ctx(ctx).Info().
		Int64("employee_id", event.EmployeeID).
		Str("status", string(event.NewStatus)).
		Msg("Syncing status change to HR directory")

	_, err := p.cb.Execute(func() (interface{}, error) {
		return nil, p.client.RecordStatusChange(ctx, event)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit Breaker is OPEN; skipping directory API call")
		}
		return true, worker.CalculateBackoff(receiveCount(msg)), err
	}

	return false, 0, nil
}

func receiveCount(msg types.Message) int {
	raw, ok := msg.Attributes["ApproximateReceiveCount"]
	if !ok {
		return 1
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return 1
	}
	return count
}
