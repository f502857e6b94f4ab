package season

import (
	"github.com/google/uuid"

	"season-sim/internal/model"
)

// State is the lifecycle of a season run.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
	StateAborted    State = "ABORTED"
)

// Result is the primary artifact of a run: one WeeklyResult per week, in order.
// An aborted run keeps the weeks that completed before the failure.
type Result struct {
	RunID    uuid.UUID
	Selector string
	Sampling SamplingMode
	State    State

	Weeks       []model.WeeklyResult
	SeasonTotal float64
}

// Totals returns the weekly totals in week order.
func (r *Result) Totals() []float64 {
	out := make([]float64, len(r.Weeks))
	for i, w := range r.Weeks {
		out[i] = w.Total
	}
	return out
}
