package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"season-sim/internal/model"
)

// Columns expected in a roster CSV. Order is free and extra columns are ignored.
var Columns = []string{"Name", "Position", "SeasonProjection", "InjuryProb", "StdDev"}

func LoadCSV(path string) ([]*model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads one player per data row. The first invalid row stops the load.
func ReadCSV(r io.Reader) ([]*model.Player, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster csv is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("roster csv is missing column %q", c)
		}
	}

	var players []*model.Player
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rr := Record{
			Name:     strings.TrimSpace(rec[idx["Name"]]),
			Position: strings.TrimSpace(rec[idx["Position"]]),
		}
		if rr.SeasonProjection, err = parseNum(row, rr.Name, "SeasonProjection", rec[idx["SeasonProjection"]]); err != nil {
			return nil, err
		}
		if rr.InjuryProb, err = parseNum(row, rr.Name, "InjuryProb", rec[idx["InjuryProb"]]); err != nil {
			return nil, err
		}
		if rr.StdDev, err = parseNum(row, rr.Name, "StdDev", rec[idx["StdDev"]]); err != nil {
			return nil, err
		}
		p, err := rr.toPlayer(row)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func parseNum(row int, name, field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &model.InvalidPlayerDataError{Row: row, Name: name, Field: field, Value: raw, Reason: "not a number"}
	}
	return v, nil
}
