// Package events publishes exam lifecycle notifications to RabbitMQ so
// downstream tooling (printing, LMS import, statistics) can react to new
// runs without polling the archive.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/domain"
)

// ExamQueueName is the queue exam events are published to
const ExamQueueName = "pruefgen.exams"

// TypeExamGenerated marks the event emitted for every assembled exam
const TypeExamGenerated = "exam.generated"

// Event is the wire envelope for exam notifications. It carries the run
// metadata only; consumers load the full document from the archive.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	RunID       uuid.UUID `json:"run_id"`
	Seed        int64     `json:"seed"`
	Difficulty  string    `json:"difficulty"`
	TotalPoints int       `json:"total_points"`
	Tasks       int       `json:"tasks"`
	GeneratedAt time.Time `json:"generated_at"`
	EmittedAt   time.Time `json:"emitted_at"`
}

// NewExamGenerated builds the notification for an assembled document
func NewExamGenerated(doc *domain.TestDocument) Event {
	return Event{
		ID:          uuid.New(),
		Type:        TypeExamGenerated,
		RunID:       doc.RunID,
		Seed:        doc.Seed,
		Difficulty:  string(doc.Difficulty),
		TotalPoints: doc.TotalPoints,
		Tasks:       len(doc.Details()),
		GeneratedAt: doc.GeneratedAt,
		EmittedAt:   time.Now().UTC(),
	}
}
