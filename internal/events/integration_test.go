//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"

	"github.com/prueflab/pruefgen/internal/assembler"
	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/events"
)

// setupRabbitMQ creates a RabbitMQ container for testing
func setupRabbitMQ(t *testing.T) (string, func()) {
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx, "rabbitmq:3.12-management")
	if err != nil {
		t.Fatalf("failed to start RabbitMQ container: %v", err)
	}

	amqpURL, err := container.AmqpURL(ctx)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("failed to get AMQP URL: %v", err)
	}

	cleanup := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return amqpURL, cleanup
}

func TestIntegration_Connection_ConnectAndClose(t *testing.T) {
	amqpURL, cleanup := setupRabbitMQ(t)
	defer cleanup()

	conn, err := events.NewConnection(amqpURL)
	if err != nil {
		t.Fatalf("failed to create connection: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("failed to close connection: %v", err)
	}
}

func TestIntegration_Connection_InvalidURL(t *testing.T) {
	_, err := events.NewConnection("amqp://invalid:5672")
	if err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestIntegration_PublishExamGenerated(t *testing.T) {
	amqpURL, cleanup := setupRabbitMQ(t)
	defer cleanup()

	conn, err := events.NewConnection(amqpURL)
	if err != nil {
		t.Fatalf("failed to create connection: %v", err)
	}
	defer conn.Close()

	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	doc, err := assembler.New(reg, nil).Assemble(assembler.Options{Seed: 9})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	publisher := events.NewPublisher(conn, nil)
	if err := publisher.PublishExamGenerated(ctx, doc); err != nil {
		t.Fatalf("PublishExamGenerated: %v", err)
	}

	// consume the message back and verify the envelope
	raw, err := amqp.Dial(amqpURL)
	if err != nil {
		t.Fatalf("dial consumer: %v", err)
	}
	defer raw.Close()
	ch, err := raw.Channel()
	if err != nil {
		t.Fatalf("open channel: %v", err)
	}
	msgs, err := ch.Consume(events.ExamQueueName, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	select {
	case msg := <-msgs:
		var event events.Event
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.RunID != doc.RunID {
			t.Errorf("event run id %s, want %s", event.RunID, doc.RunID)
		}
		if event.Type != events.TypeExamGenerated {
			t.Errorf("event type %q", event.Type)
		}
	case <-ctx.Done():
		t.Fatal("no event received before timeout")
	}
}
