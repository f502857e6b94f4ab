package season

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"season-sim/internal/lineup"
	"season-sim/internal/logger"
	"season-sim/internal/model"
	"season-sim/internal/random"
)

// SamplingMode controls how players are sampled within a week.
type SamplingMode string

const (
	// SamplingSequential draws every player from the run's source in roster order.
	SamplingSequential SamplingMode = "sequential"
	// SamplingConcurrent forks one child source per player each week and samples
	// players in parallel. Requires a source implementing random.Forker.
	SamplingConcurrent SamplingMode = "concurrent"
)

func ParseSamplingMode(s string) (SamplingMode, error) {
	switch SamplingMode(s) {
	case "", SamplingSequential:
		return SamplingSequential, nil
	case SamplingConcurrent:
		return SamplingConcurrent, nil
	}
	return "", fmt.Errorf("unsupported sampling mode: %q", s)
}

var ErrNilSelector = errors.New("lineup selector is nil")

type Engine struct {
	Selector lineup.Selector
	Sampling SamplingMode
	Sink     Sink
	Log      logrus.FieldLogger
}

// New returns an engine with the greedy selector, sequential sampling, no sink
// and a silent logger.
func New() *Engine {
	return &Engine{
		Selector: lineup.Greedy{},
		Sampling: SamplingSequential,
		Sink:     Discard{},
		Log:      logger.Discard(),
	}
}

// Run simulates a full season. Weeks run strictly in order; each week samples
// every player, selects the lineup, totals it and emits the result.
func (e *Engine) Run(ctx context.Context, team *Team, src random.Source) (*Result, error) {
	if team == nil || len(team.players) == 0 {
		return nil, ErrEmptyRoster
	}
	if e.Selector == nil {
		return nil, ErrNilSelector
	}
	if src == nil {
		return nil, fmt.Errorf("random source is nil")
	}
	mode, err := ParseSamplingMode(string(e.Sampling))
	if err != nil {
		return nil, err
	}
	sink := e.Sink
	if sink == nil {
		sink = Discard{}
	}
	log := e.Log
	if log == nil {
		log = logger.Discard()
	}

	res := &Result{
		RunID:    uuid.New(),
		Selector: e.Selector.Name(),
		Sampling: mode,
		State:    StateNotStarted,
		Weeks:    make([]model.WeeklyResult, 0, model.SeasonWeeks),
	}
	mark := func(s State) {
		res.State = s
		team.state = s
	}
	log = log.WithField("run_id", res.RunID.String())
	log.WithFields(logrus.Fields{
		"players":  len(team.players),
		"selector": res.Selector,
		"sampling": mode,
	}).Info("Season started")
	mark(StateInProgress)

	for week := 1; week <= model.SeasonWeeks; week++ {
		if err := ctx.Err(); err != nil {
			mark(StateAborted)
			return res, fmt.Errorf("week %d: %w", week, err)
		}

		if err := sampleWeek(ctx, mode, team.players, src); err != nil {
			mark(StateAborted)
			return res, fmt.Errorf("week %d sample: %w", week, err)
		}

		team.setStartingLineup(e.Selector)
		wr := model.WeeklyResult{
			Week:   week,
			Total:  lineup.Total(team.lineup),
			Lineup: lineup.Entries(team.lineup),
		}
		res.Weeks = append(res.Weeks, wr)
		res.SeasonTotal += wr.Total

		log.WithFields(logrus.Fields{
			"week":     week,
			"total":    wr.Total,
			"starters": len(wr.Lineup),
		}).Debug("Week simulated")

		if err := sink.Week(wr); err != nil {
			mark(StateAborted)
			return res, fmt.Errorf("week %d sink: %w", week, err)
		}
	}

	if err := sink.Season(res.Weeks); err != nil {
		mark(StateAborted)
		return res, fmt.Errorf("season sink: %w", err)
	}
	mark(StateCompleted)
	log.WithField("season_total", res.SeasonTotal).Info("Season completed")
	return res, nil
}

func sampleWeek(ctx context.Context, mode SamplingMode, players []*model.Player, src random.Source) error {
	if mode == SamplingSequential {
		for _, p := range players {
			p.SimulateWeek(src)
		}
		return nil
	}

	forker, ok := src.(random.Forker)
	if !ok {
		return fmt.Errorf("concurrent sampling needs a forkable source, got %T", src)
	}
	children := forker.Fork(len(players))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range players {
		p, child := p, children[i]
		g.Go(func() error {
			p.SimulateWeek(child)
			return nil
		})
	}
	// Lineup selection reads every player, so all draws must land first.
	return g.Wait()
}
