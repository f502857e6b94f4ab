package season

import (
	"errors"
	"fmt"
	"io"

	"season-sim/internal/model"
)

// Sink receives results as the season progresses. Week is called once per
// week in order; Season is called once after the last week.
type Sink interface {
	Week(wr model.WeeklyResult) error
	Season(weeks []model.WeeklyResult) error
}

// Discard ignores everything.
type Discard struct{}

func (Discard) Week(model.WeeklyResult) error     { return nil }
func (Discard) Season([]model.WeeklyResult) error { return nil }

// MultiSink fans out to every sink, in order, stopping at the first error.
type MultiSink []Sink

func (m MultiSink) Week(wr model.WeeklyResult) error {
	for _, s := range m {
		if err := s.Week(wr); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) Season(weeks []model.WeeklyResult) error {
	var errs []error
	for _, s := range m {
		if err := s.Season(weeks); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TextSink prints each week's lineup and a final per-week summary.
type TextSink struct {
	W io.Writer
}

func (t TextSink) Week(wr model.WeeklyResult) error {
	if _, err := fmt.Fprintf(t.W, "Week %d:\n  Starting lineup:\n", wr.Week); err != nil {
		return err
	}
	for _, e := range wr.Lineup {
		if _, err := fmt.Fprintf(t.W, "    %-4s %s (%s) - %.2f points\n", e.Slot, e.Name, e.Position, e.Points); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.W, "  Weekly Total: %.2f\n\n", wr.Total)
	return err
}

func (t TextSink) Season(weeks []model.WeeklyResult) error {
	if _, err := fmt.Fprintln(t.W, "Final Season Results:"); err != nil {
		return err
	}
	total := 0.0
	for _, w := range weeks {
		total += w.Total
		if _, err := fmt.Fprintf(t.W, "  Week %d: %.2f points\n", w.Week, w.Total); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.W, "  Season Total: %.2f points\n", total)
	return err
}

// SummarySink only prints the final per-week totals.
type SummarySink struct {
	W io.Writer
}

func (SummarySink) Week(model.WeeklyResult) error { return nil }

func (s SummarySink) Season(weeks []model.WeeklyResult) error {
	return TextSink{W: s.W}.Season(weeks)
}

// Recorder keeps every week it receives. Useful for callers that only hold a sink.
type Recorder struct {
	Weeks    []model.WeeklyResult
	Finished bool
}

func (r *Recorder) Week(wr model.WeeklyResult) error {
	r.Weeks = append(r.Weeks, wr)
	return nil
}

func (r *Recorder) Season([]model.WeeklyResult) error {
	r.Finished = true
	return nil
}
