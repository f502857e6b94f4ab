package season

import (
	"errors"

	"season-sim/internal/lineup"
	"season-sim/internal/model"
)

var ErrEmptyRoster = errors.New("roster has no players")

// Team owns the roster for the lifetime of a run plus the starting lineup of
// the most recent week.
type Team struct {
	players []*model.Player
	lineup  []lineup.Starter
	state   State
}

// NewTeam builds a team from copies of the given players. The copies start
// with no history; the caller's players are never sampled by a run.
func NewTeam(players []*model.Player) (*Team, error) {
	if len(players) == 0 {
		return nil, ErrEmptyRoster
	}
	owned := make([]*model.Player, len(players))
	for i, p := range players {
		owned[i] = p.Clone()
	}
	return &Team{players: owned, state: StateNotStarted}, nil
}

// State is the state of the latest run on this team.
func (t *Team) State() State {
	return t.state
}

// Players returns the roster in its original order.
func (t *Team) Players() []*model.Player {
	out := make([]*model.Player, len(t.players))
	copy(out, t.players)
	return out
}

// StartingLineup is the lineup chosen for the most recent week.
func (t *Team) StartingLineup() []lineup.Starter {
	out := make([]lineup.Starter, len(t.lineup))
	copy(out, t.lineup)
	return out
}

// setStartingLineup replaces the previous week's lineup wholesale.
func (t *Team) setStartingLineup(sel lineup.Selector) {
	t.lineup = sel.Select(t.players)
}

// Fresh returns a new team with the same player params and no history.
func (t *Team) Fresh() *Team {
	players := make([]*model.Player, len(t.players))
	for i, p := range t.players {
		players[i] = p.Clone()
	}
	return &Team{players: players, state: StateNotStarted}
}
