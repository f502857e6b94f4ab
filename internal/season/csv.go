package season

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"season-sim/internal/model"
)

var csvHeader = []string{
	"week",
	"slot",
	"name",
	"position",
	"points",
	"weekly_total",
	"cum_total",
}

// WriteWeeksCSV writes one row per starter per week.
func WriteWeeksCSV(path string, weeks []model.WeeklyResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := NewCSVSink(f)
	for _, wr := range weeks {
		if err := s.Week(wr); err != nil {
			return err
		}
	}
	return s.Season(weeks)
}

// CSVSink streams starter rows as weeks complete.
type CSVSink struct {
	w         *csv.Writer
	cum       float64
	wroteHead bool
}

func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) Week(wr model.WeeklyResult) error {
	if !s.wroteHead {
		if err := s.w.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHead = true
	}
	s.cum += wr.Total
	for _, e := range wr.Lineup {
		row := []string{
			strconv.Itoa(wr.Week),
			string(e.Slot),
			e.Name,
			string(e.Position),
			fmtFloat(e.Points),
			fmtFloat(wr.Total),
			fmtFloat(s.cum),
		}
		if err := s.w.Write(row); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSVSink) Season([]model.WeeklyResult) error {
	if !s.wroteHead {
		if err := s.w.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHead = true
	}
	s.w.Flush()
	return s.w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
