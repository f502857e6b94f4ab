package analysis

import (
	"sort"

	"season-sim/internal/model"
)

// StarterRank is how much one player contributed from the starting lineup.
type StarterRank struct {
	Name       string
	Position   model.Position
	Starts     int
	FlexStarts int
	Points     float64
}

type starterKey struct {
	name string
	pos  model.Position
}

// RankStarters totals started points per player across the given weeks and
// sorts descending by points. Players who never started are absent.
func RankStarters(weeks []model.WeeklyResult) []StarterRank {
	byKey := map[starterKey]*StarterRank{}
	var order []starterKey
	for _, w := range weeks {
		for _, e := range w.Lineup {
			k := starterKey{e.Name, e.Position}
			r, ok := byKey[k]
			if !ok {
				r = &StarterRank{Name: e.Name, Position: e.Position}
				byKey[k] = r
				order = append(order, k)
			}
			r.Starts++
			if e.Slot == model.SlotFlex {
				r.FlexStarts++
			}
			r.Points += e.Points
		}
	}

	out := make([]StarterRank, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}
