package model

import (
	"math"
	"strconv"

	"season-sim/internal/random"
)

// SeasonWeeks is the number of weeks in a simulated season.
const SeasonWeeks = 17

// PlayerParams are the static projection parameters of a player.
// Units:
// - SeasonProjection: expected fantasy points over the whole season
// - StdDev: weekly scoring volatility in points
// - InjuryProb: per-week probability of a game-ending injury, 0..1
type PlayerParams struct {
	Name             string
	Position         Position
	SeasonProjection float64
	InjuryProb       float64
	StdDev           float64
}

// PlayerState captures mutable per-week state. Only SimulateWeek writes it.
type PlayerState struct {
	weeklyPoints []float64
	injured      bool
}

// Player bundles params + state.
type Player struct {
	Params PlayerParams
	state  PlayerState
}

func NewPlayer(params PlayerParams) (*Player, error) {
	p := &Player{Params: params}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) Validate() error {
	pp := p.Params
	bad := func(field string, v float64, reason string) error {
		return &InvalidPlayerDataError{
			Name:   pp.Name,
			Field:  field,
			Value:  strconv.FormatFloat(v, 'g', -1, 64),
			Reason: reason,
		}
	}
	if pp.Name == "" {
		return &InvalidPlayerDataError{Field: "Name", Reason: "must not be empty"}
	}
	if pos, err := ParsePosition(string(pp.Position)); err != nil || pos != pp.Position {
		return &InvalidPlayerDataError{Name: pp.Name, Field: "Position", Value: string(pp.Position), Reason: positionReason()}
	}
	if math.IsNaN(pp.SeasonProjection) || math.IsInf(pp.SeasonProjection, 0) || pp.SeasonProjection < 0 {
		return bad("SeasonProjection", pp.SeasonProjection, "must be a finite number >= 0")
	}
	if math.IsNaN(pp.InjuryProb) || pp.InjuryProb < 0 || pp.InjuryProb > 1 {
		return bad("InjuryProb", pp.InjuryProb, "must be in [0, 1]")
	}
	if math.IsNaN(pp.StdDev) || math.IsInf(pp.StdDev, 0) || pp.StdDev < 0 {
		return bad("StdDev", pp.StdDev, "must be a finite number >= 0")
	}
	return nil
}

func (p *Player) Name() string       { return p.Params.Name }
func (p *Player) Position() Position { return p.Params.Position }

// WeeklyMean is the expected score for a healthy week.
func (p *Player) WeeklyMean() float64 {
	return p.Params.SeasonProjection / SeasonWeeks
}

// SimulateWeek samples one week: an injury trial first, then (only when
// healthy) a normal draw floored at 0. Exactly one entry is appended.
func (p *Player) SimulateWeek(src random.Source) {
	p.state.injured = src.Bernoulli(p.Params.InjuryProb)
	if p.state.injured {
		p.state.weeklyPoints = append(p.state.weeklyPoints, 0)
		return
	}
	pts := math.Max(0, src.Normal(p.WeeklyMean(), p.Params.StdDev))
	p.state.weeklyPoints = append(p.state.weeklyPoints, pts)
}

// Injured reports the injury outcome of the most recently simulated week.
func (p *Player) Injured() bool { return p.state.injured }

// LatestPoints is the most recent weekly outcome, or 0 before any week was simulated.
func (p *Player) LatestPoints() float64 {
	n := len(p.state.weeklyPoints)
	if n == 0 {
		return 0
	}
	return p.state.weeklyPoints[n-1]
}

func (p *Player) WeeksPlayed() int { return len(p.state.weeklyPoints) }

// WeeklyPoints returns a copy of the outcome history in week order.
func (p *Player) WeeklyPoints() []float64 {
	out := make([]float64, len(p.state.weeklyPoints))
	copy(out, p.state.weeklyPoints)
	return out
}

// SeasonPoints sums every simulated week.
func (p *Player) SeasonPoints() float64 {
	sum := 0.0
	for _, v := range p.state.weeklyPoints {
		sum += v
	}
	return sum
}

// Clone returns a player with the same params and an empty history.
func (p *Player) Clone() *Player {
	return &Player{Params: p.Params}
}
