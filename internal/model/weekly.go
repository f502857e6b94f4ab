package model

// LineupEntry is one starter in a week's lineup.
type LineupEntry struct {
	Name     string
	Position Position
	Slot     Slot
	Points   float64
}

// WeeklyResult is the record emitted once per simulated week.
type WeeklyResult struct {
	Week   int
	Total  float64
	Lineup []LineupEntry
}
