package lineup

import (
	"sort"

	"season-sim/internal/model"
)

// Greedy fills each base slot with the best healthy players at that position,
// then fills FLEX from the leftover RB/WR/TE pool. Slots are filled one group
// at a time; it does not search for a jointly optimal lineup.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Select(players []*model.Player) []Starter {
	healthy := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if !p.Injured() {
			healthy = append(healthy, p)
		}
	}

	byPos := map[model.Position][]*model.Player{}
	for _, p := range healthy {
		byPos[p.Position()] = append(byPos[p.Position()], p)
	}

	starters := make([]Starter, 0, MaxStarters())
	chosen := map[*model.Player]bool{}
	for _, req := range requirements {
		if req.Slot == model.SlotFlex {
			continue
		}
		for _, p := range topN(byPos[req.Eligible[0]], req.Count) {
			starters = append(starters, Starter{Player: p, Slot: req.Slot})
			chosen[p] = true
		}
	}

	flex := make([]*model.Player, 0, len(healthy))
	for _, p := range healthy {
		if p.Position().IsFlexEligible() && !chosen[p] {
			flex = append(flex, p)
		}
	}
	for _, p := range topN(flex, flexCount()) {
		starters = append(starters, Starter{Player: p, Slot: model.SlotFlex})
	}
	return starters
}

// topN returns up to n players by latest points, descending. Ties keep input order.
func topN(group []*model.Player, n int) []*model.Player {
	sorted := make([]*model.Player, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LatestPoints() > sorted[j].LatestPoints()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func flexCount() int {
	for _, r := range requirements {
		if r.Slot == model.SlotFlex {
			return r.Count
		}
	}
	return 0
}
