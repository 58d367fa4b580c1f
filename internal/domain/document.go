package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TierSlot describes one group of tasks within a category: how many tasks of
// a tier, and how many points each is worth. The breakdown is fixed
// configuration, not generated. An optional topic narrows template selection
// within the category, e.g. the number-sense category must draw its
// place-value task from place-value templates.
type TierSlot struct {
	Tier   Tier
	Count  int
	Points int    // points per task
	Topic  string // optional template topic filter
}

// CategorySlot is the required structure of one exam category
type CategorySlot struct {
	Category  Category
	Points    int // required total, always 20
	Breakdown []TierSlot
}

// TotalPoints sums the points of all tasks in the breakdown
func (s CategorySlot) TotalPoints() int {
	total := 0
	for _, ts := range s.Breakdown {
		total += ts.Count * ts.Points
	}
	return total
}

// TestSpec is the fixed configuration of the whole exam
type TestSpec struct {
	Slots            []CategorySlot
	TotalPoints      int
	TimeLimitMinutes int
	PassMark         int
}

// Validate checks the structural invariants of the spec: five categories,
// each summing to its required points, and a grand total of 100.
func (s TestSpec) Validate() error {
	if len(s.Slots) != 5 {
		return fmt.Errorf("%w: expected 5 categories, got %d", ErrInvalidSpec, len(s.Slots))
	}
	grand := 0
	for _, slot := range s.Slots {
		got := slot.TotalPoints()
		if got != slot.Points {
			return fmt.Errorf("%w: category %s sums to %d points, want %d",
				ErrInvalidSpec, slot.Category, got, slot.Points)
		}
		grand += got
	}
	if grand != s.TotalPoints {
		return fmt.Errorf("%w: total is %d points, want %d", ErrInvalidSpec, grand, s.TotalPoints)
	}
	return nil
}

// GradeBand is one row of the grading-scale table
type GradeBand struct {
	Grade     int
	Label     string
	MinPoints int
	MaxPoints int
}

// GradingScale returns the fixed grade bands for the 100-point exam
func GradingScale() []GradeBand {
	return []GradeBand{
		{Grade: 1, Label: "Sehr gut", MinPoints: 90, MaxPoints: 100},
		{Grade: 2, Label: "Gut", MinPoints: 80, MaxPoints: 89},
		{Grade: 3, Label: "Befriedigend", MinPoints: 70, MaxPoints: 79},
		{Grade: 4, Label: "Genügend", MinPoints: 60, MaxPoints: 69},
		{Grade: 5, Label: "Nicht genügend", MinPoints: 0, MaxPoints: 59},
	}
}

// CategoryResult holds the accepted tasks of one category, in order
type CategoryResult struct {
	Category Category
	Points   int
	Tasks    []GeneratedTask
}

// TestDocument is the assembled exam. It is owned by the run that produced it
// and immutable once assembled.
type TestDocument struct {
	RunID            uuid.UUID
	Seed             int64
	Difficulty       Tier
	GeneratedAt      time.Time
	TotalPoints      int
	TimeLimitMinutes int
	PassMark         int
	Categories       []CategoryResult
	Scale            []GradeBand
}

// TaskPoints sums the point values of every task in the document
func (d *TestDocument) TaskPoints() int {
	total := 0
	for _, cat := range d.Categories {
		for _, task := range cat.Tasks {
			total += task.Points
		}
	}
	return total
}

// Validate checks the point invariants that must hold for every run
func (d *TestDocument) Validate() error {
	for _, cat := range d.Categories {
		pts := 0
		for _, task := range cat.Tasks {
			pts += task.Points
		}
		if pts != cat.Points {
			return fmt.Errorf("%w: category %s has %d points, want %d",
				ErrInvalidSpec, cat.Category, pts, cat.Points)
		}
	}
	if got := d.TaskPoints(); got != d.TotalPoints {
		return fmt.Errorf("%w: document has %d points, want %d", ErrInvalidSpec, got, d.TotalPoints)
	}
	return nil
}

// TaskDetail is the flat per-task record exported for downstream tooling
type TaskDetail struct {
	Number      string `json:"nummer"`
	TemplateID  string `json:"template_id"`
	Problem     string `json:"aufgabe"`
	Solution    string `json:"loesung"`
	Explanation string `json:"erklaerung"`
	Points      int    `json:"punkte"`
}

// Details flattens the document into per-task records, numbered by category
// position and task position within the category.
func (d *TestDocument) Details() []TaskDetail {
	var details []TaskDetail
	for ci, cat := range d.Categories {
		for ti, task := range cat.Tasks {
			details = append(details, TaskDetail{
				Number:      fmt.Sprintf("%d.%d", ci+1, ti+1),
				TemplateID:  task.TemplateID,
				Problem:     task.Problem,
				Solution:    task.Solution,
				Explanation: task.Explanation,
				Points:      task.Points,
			})
		}
	}
	return details
}
