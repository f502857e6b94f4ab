package lineup

import "season-sim/internal/model"

// Starter is a player placed in a lineup slot.
type Starter struct {
	Player *model.Player
	Slot   model.Slot
}

// Selector picks a starting lineup from a roster's latest weekly outcomes.
type Selector interface {
	Name() string
	Select(players []*model.Player) []Starter
}

// SlotRequirement is a fixed number of starters for one slot.
type SlotRequirement struct {
	Slot  model.Slot
	Count int
	// Eligible positions for the slot.
	Eligible []model.Position
}

var requirements = []SlotRequirement{
	{Slot: model.SlotQB, Count: 1, Eligible: []model.Position{model.PositionQB}},
	{Slot: model.SlotRB, Count: 2, Eligible: []model.Position{model.PositionRB}},
	{Slot: model.SlotWR, Count: 2, Eligible: []model.Position{model.PositionWR}},
	{Slot: model.SlotTE, Count: 1, Eligible: []model.Position{model.PositionTE}},
	{Slot: model.SlotK, Count: 1, Eligible: []model.Position{model.PositionK}},
	{Slot: model.SlotDST, Count: 1, Eligible: []model.Position{model.PositionDST}},
	{Slot: model.SlotFlex, Count: 2, Eligible: []model.Position{model.PositionRB, model.PositionWR, model.PositionTE}},
}

// Requirements returns the lineup slot table in selection order.
func Requirements() []SlotRequirement {
	out := make([]SlotRequirement, len(requirements))
	copy(out, requirements)
	return out
}

// MaxStarters is the size of a fully filled lineup.
func MaxStarters() int {
	n := 0
	for _, r := range requirements {
		n += r.Count
	}
	return n
}

// Total sums the latest weekly points of the starters.
func Total(starters []Starter) float64 {
	sum := 0.0
	for _, s := range starters {
		sum += s.Player.LatestPoints()
	}
	return sum
}

// Entries converts starters into result rows.
func Entries(starters []Starter) []model.LineupEntry {
	out := make([]model.LineupEntry, 0, len(starters))
	for _, s := range starters {
		out = append(out, model.LineupEntry{
			Name:     s.Player.Name(),
			Position: s.Player.Position(),
			Slot:     s.Slot,
			Points:   s.Player.LatestPoints(),
		})
	}
	return out
}

// New returns the selector registered under name.
func New(name string) (Selector, bool) {
	switch name {
	case "", "greedy":
		return Greedy{}, true
	default:
		return nil, false
	}
}
