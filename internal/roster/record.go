package roster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"season-sim/internal/model"
)

// Record is one player row as it appears in a roster file or request body.
type Record struct {
	Name             string  `yaml:"name" json:"name"`
	Position         string  `yaml:"position" json:"position"`
	SeasonProjection float64 `yaml:"season_projection" json:"season_projection"`
	InjuryProb       float64 `yaml:"injury_prob" json:"injury_prob"`
	StdDev           float64 `yaml:"std_dev" json:"std_dev"`
}

// toPlayer validates the record. row is attached to validation errors.
func (r Record) toPlayer(row int) (*model.Player, error) {
	pos, err := model.ParsePosition(r.Position)
	if err != nil {
		return nil, &model.InvalidPlayerDataError{
			Row: row, Name: r.Name, Field: "Position", Value: r.Position,
			Reason: err.Error(),
		}
	}
	p, err := model.NewPlayer(model.PlayerParams{
		Name:             r.Name,
		Position:         pos,
		SeasonProjection: r.SeasonProjection,
		InjuryProb:       r.InjuryProb,
		StdDev:           r.StdDev,
	})
	if err != nil {
		var invalid *model.InvalidPlayerDataError
		if errors.As(err, &invalid) {
			invalid.Row = row
		}
		return nil, err
	}
	return p, nil
}

// FromRecords validates records in order; rows are numbered from 1.
func FromRecords(records []Record) ([]*model.Player, error) {
	players := make([]*model.Player, 0, len(records))
	for i, r := range records {
		p, err := r.toPlayer(i + 1)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// ToRecords is the inverse of FromRecords.
func ToRecords(players []*model.Player) []Record {
	out := make([]Record, 0, len(players))
	for _, p := range players {
		out = append(out, Record{
			Name:             p.Params.Name,
			Position:         string(p.Params.Position),
			SeasonProjection: p.Params.SeasonProjection,
			InjuryProb:       p.Params.InjuryProb,
			StdDev:           p.Params.StdDev,
		})
	}
	return out
}

// Load picks a reader by file extension.
func Load(path string) ([]*model.Player, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".yaml", ".yml":
		r, err := LoadYAML(path)
		if err != nil {
			return nil, err
		}
		return r.Build()
	default:
		return nil, fmt.Errorf("unsupported roster file %q (want .csv, .yaml or .yml)", path)
	}
}
