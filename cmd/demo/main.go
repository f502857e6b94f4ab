package main

import (
	"context"
	"flag"
	"os"

	"season-sim/internal/logger"
	"season-sim/internal/model"
	"season-sim/internal/random"
	"season-sim/internal/season"
)

// Demo:
// - Build a small roster in code
// - Simulate one seeded season
// - Print each week's lineup and the final totals
func main() {
	seed := flag.Int64("seed", 2024, "Random seed")
	verbose := flag.Bool("v", false, "Log each week")
	flag.Parse()

	params := []model.PlayerParams{
		{Name: "Patrick Mahomes", Position: model.PositionQB, SeasonProjection: 360, InjuryProb: 0.04, StdDev: 7},
		{Name: "Christian McCaffrey", Position: model.PositionRB, SeasonProjection: 320, InjuryProb: 0.10, StdDev: 8},
		{Name: "Saquon Barkley", Position: model.PositionRB, SeasonProjection: 270, InjuryProb: 0.08, StdDev: 7},
		{Name: "James Cook", Position: model.PositionRB, SeasonProjection: 200, InjuryProb: 0.06, StdDev: 6},
		{Name: "Justin Jefferson", Position: model.PositionWR, SeasonProjection: 290, InjuryProb: 0.06, StdDev: 8},
		{Name: "Amon-Ra St. Brown", Position: model.PositionWR, SeasonProjection: 270, InjuryProb: 0.05, StdDev: 7},
		{Name: "DeVonta Smith", Position: model.PositionWR, SeasonProjection: 200, InjuryProb: 0.05, StdDev: 7},
		{Name: "Sam LaPorta", Position: model.PositionTE, SeasonProjection: 180, InjuryProb: 0.06, StdDev: 5},
		{Name: "Justin Tucker", Position: model.PositionK, SeasonProjection: 150, InjuryProb: 0.01, StdDev: 4},
		{Name: "49ers", Position: model.PositionDST, SeasonProjection: 140, InjuryProb: 0, StdDev: 6},
	}
	players := make([]*model.Player, 0, len(params))
	for _, pp := range params {
		p, err := model.NewPlayer(pp)
		if err != nil {
			panic(err)
		}
		players = append(players, p)
	}

	team, err := season.NewTeam(players)
	if err != nil {
		panic(err)
	}

	engine := season.New()
	engine.Sink = season.TextSink{W: os.Stdout}
	if *verbose {
		engine.Log = logger.New("debug", "", os.Stderr)
	}
	if _, err := engine.Run(context.Background(), team, random.NewSeeded(*seed)); err != nil {
		panic(err)
	}
}
