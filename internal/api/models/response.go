package models

// SeasonResponse represents the response from a season run
type SeasonResponse struct {
	ID       string        `json:"id"`
	Status   string        `json:"status"`
	Seed     int64         `json:"seed"`
	Selector string        `json:"selector"`
	Sampling string        `json:"sampling"`
	Summary  SeasonSummary `json:"summary"`
	Weeks    []WeekResult  `json:"weeks"`
}

// SeasonSummary contains aggregated season results
type SeasonSummary struct {
	SeasonTotal float64      `json:"season_total"`
	WeeklyMean  float64      `json:"weekly_mean"`
	BestWeek    int          `json:"best_week"`
	WorstWeek   int          `json:"worst_week"`
	TopStarters []StarterRow `json:"top_starters,omitempty"`
}

// WeekResult is one simulated week
type WeekResult struct {
	Week   int           `json:"week"`
	Total  float64       `json:"total"`
	Lineup []LineupEntry `json:"lineup,omitempty"`
}

// LineupEntry is one starter
type LineupEntry struct {
	Slot     string  `json:"slot"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Points   float64 `json:"points"`
}

// StarterRow summarizes one player's starts
type StarterRow struct {
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Starts     int     `json:"starts"`
	FlexStarts int     `json:"flex_starts"`
	Points     float64 `json:"points"`
}

// MonteCarloResponse represents the response from a Monte Carlo run
type MonteCarloResponse struct {
	Iterations   int          `json:"iterations"`
	Seed         int64        `json:"seed"`
	Distribution Distribution `json:"distribution"`
	WeekMeans    []float64    `json:"week_means"`
	Starters     []StarterRow `json:"starters"`
}

// Distribution summarizes season totals
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

// RosterInfo represents information about a roster preset
type RosterInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	File        string `json:"file"`
	Players     int    `json:"players"`
}

// SlotInfo describes a lineup slot
type SlotInfo struct {
	Slot     string   `json:"slot"`
	Count    int      `json:"count"`
	Eligible []string `json:"eligible"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
