package analysis

import (
	"context"
	"errors"
	"fmt"

	"season-sim/internal/logger"
	"season-sim/internal/model"
	"season-sim/internal/random"
	"season-sim/internal/season"
)

// MonteCarloResult aggregates repeated seasons of the same roster.
type MonteCarloResult struct {
	Iterations   int
	Seed         int64
	SeasonTotals []float64
	WeekMeans    []float64
	Season       Distribution
	Starters     []StarterRank
}

// MonteCarlo replays the roster's season n times, one after another. Iteration
// i uses seed+i, so any single season can be reproduced on its own. Each
// iteration starts from a fresh copy of the roster. The engine's selector and
// sampling mode are used; its sink is not.
func MonteCarlo(ctx context.Context, e *season.Engine, players []*model.Player, n int, seed int64) (*MonteCarloResult, error) {
	if e == nil {
		return nil, errors.New("engine is nil")
	}
	if n <= 0 {
		return nil, fmt.Errorf("iterations must be > 0, got %d", n)
	}
	base, err := season.NewTeam(players)
	if err != nil {
		return nil, err
	}

	quiet := *e
	quiet.Sink = season.Discard{}
	quiet.Log = logger.Discard()

	out := &MonteCarloResult{
		Iterations:   n,
		Seed:         seed,
		SeasonTotals: make([]float64, 0, n),
		WeekMeans:    make([]float64, model.SeasonWeeks),
	}
	var allWeeks []model.WeeklyResult
	for i := 0; i < n; i++ {
		res, err := quiet.Run(ctx, base.Fresh(), random.NewSeeded(seed+int64(i)))
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		out.SeasonTotals = append(out.SeasonTotals, res.SeasonTotal)
		for w, wr := range res.Weeks {
			out.WeekMeans[w] += wr.Total
		}
		allWeeks = append(allWeeks, res.Weeks...)
	}
	for w := range out.WeekMeans {
		out.WeekMeans[w] /= float64(n)
	}
	out.Season = Summarize(out.SeasonTotals)
	out.Starters = RankStarters(allWeeks)
	return out, nil
}
