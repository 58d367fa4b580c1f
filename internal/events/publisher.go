package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Publisher emits exam events with retry on transient broker failures
type Publisher struct {
	conn    *Connection
	retrier retry.Retry[struct{}]
	logger  *slog.Logger
}

// NewPublisher wraps a connection with a bounded exponential-backoff retrier
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		conn:   conn,
		logger: logger,
		retrier: retry.New[struct{}](retry.Config{
			MaxAttempts:   3,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
		}),
	}
}

// PublishExamGenerated emits the notification for an assembled document
func (p *Publisher) PublishExamGenerated(ctx context.Context, doc *domain.TestDocument) error {
	event := NewExamGenerated(doc)

	_, err := p.retrier.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.conn.PublishJSON(ctx, ExamQueueName, event)
	})
	if err != nil {
		return fmt.Errorf("publish %s for run %s: %w", event.Type, event.RunID, err)
	}

	p.logger.Info("published exam event",
		"event_id", event.ID,
		"run_id", event.RunID,
		"seed", event.Seed,
		"difficulty", event.Difficulty)
	return nil
}
