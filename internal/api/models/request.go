package models

// PlayerInput is one roster entry in a request body.
type PlayerInput struct {
	Name             string  `json:"name" binding:"required"`
	Position         string  `json:"position" binding:"required"`
	SeasonProjection float64 `json:"season_projection"`
	InjuryProb       float64 `json:"injury_prob"`
	StdDev           float64 `json:"std_dev"`
}

// RosterSource selects a roster: inline players, or a preset ID from the roster directory.
type RosterSource struct {
	Preset  string        `json:"preset,omitempty"`
	Players []PlayerInput `json:"players,omitempty" binding:"omitempty,dive"`
}

// SeasonRequest represents the request body for simulating one season
type SeasonRequest struct {
	Roster  RosterSource  `json:"roster"`
	Seed    *int64        `json:"seed,omitempty"`
	Options SeasonOptions `json:"options,omitempty"`
}

// SeasonOptions contains optional season parameters
type SeasonOptions struct {
	Sampling       string `json:"sampling,omitempty"`        // "sequential" (default) or "concurrent"
	Selector       string `json:"selector,omitempty"`        // "greedy" (default)
	IncludeLineups bool   `json:"include_lineups,omitempty"` // default: false
}

// MonteCarloRequest represents a request to repeat a season many times
type MonteCarloRequest struct {
	Roster     RosterSource  `json:"roster"`
	Seed       *int64        `json:"seed,omitempty"`
	Iterations int           `json:"iterations" binding:"required,min=1"`
	Options    SeasonOptions `json:"options,omitempty"`
}
