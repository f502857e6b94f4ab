package lineup

import (
	"testing"

	"season-sim/internal/model"
	"season-sim/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcome struct {
	name    string
	pos     model.Position
	points  float64
	injured bool
}

// rosterWithOutcomes builds players and plays one scripted week for each.
func rosterWithOutcomes(t *testing.T, outcomes []outcome) []*model.Player {
	t.Helper()
	players := make([]*model.Player, 0, len(outcomes))
	for _, o := range outcomes {
		p, err := model.NewPlayer(model.PlayerParams{Name: o.name, Position: o.pos, SeasonProjection: 100, StdDev: 5})
		require.NoError(t, err)
		p.SimulateWeek(random.NewScripted([]bool{o.injured}, []float64{o.points}))
		players = append(players, p)
	}
	return players
}

func names(starters []Starter) []string {
	out := make([]string, 0, len(starters))
	for _, s := range starters {
		out = append(out, s.Player.Name())
	}
	return out
}

func TestGreedy_FullLineupWithFlex(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{
		{"QB", model.PositionQB, 20, false},
		{"RB1", model.PositionRB, 15, false},
		{"RB2", model.PositionRB, 10, false},
		{"WR1", model.PositionWR, 12, false},
		{"WR2", model.PositionWR, 8, false},
		{"TE", model.PositionTE, 6, false},
		{"K", model.PositionK, 5, false},
		{"DST", model.PositionDST, 7, false},
		{"RB3", model.PositionRB, 9, false},
	})

	starters := Greedy{}.Select(players)

	assert.Equal(t, []string{"QB", "RB1", "RB2", "WR1", "WR2", "TE", "K", "DST", "RB3"}, names(starters))
	assert.Equal(t, model.SlotFlex, starters[8].Slot)
	assert.InDelta(t, 92.0, Total(starters), 1e-9)
}

func TestGreedy_BothFlexSlotsFilled(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{
		{"QB", model.PositionQB, 20, false},
		{"RB1", model.PositionRB, 15, false},
		{"RB2", model.PositionRB, 10, false},
		{"WR1", model.PositionWR, 12, false},
		{"WR2", model.PositionWR, 8, false},
		{"TE", model.PositionTE, 6, false},
		{"K", model.PositionK, 5, false},
		{"DST", model.PositionDST, 7, false},
		{"RB3", model.PositionRB, 9, false},
		{"WR3", model.PositionWR, 4, false},
		{"RB4", model.PositionRB, 1, false},
	})

	starters := Greedy{}.Select(players)

	require.Len(t, starters, MaxStarters())
	assert.Equal(t, []string{"QB", "RB1", "RB2", "WR1", "WR2", "TE", "K", "DST", "RB3", "WR3"}, names(starters))
	assert.Equal(t, model.SlotFlex, starters[8].Slot)
	assert.Equal(t, model.SlotFlex, starters[9].Slot)
	assert.InDelta(t, 96.0, Total(starters), 1e-9)
}

func TestGreedy_ExcludesInjuredAndNeverDuplicates(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{
		{"QB1", model.PositionQB, 0, true},
		{"QB2", model.PositionQB, 11, false},
		{"RB1", model.PositionRB, 30, false},
		{"RB2", model.PositionRB, 0, true},
		{"RB3", model.PositionRB, 4, false},
		{"RB4", model.PositionRB, 3, false},
		{"WR1", model.PositionWR, 9, false},
		{"WR2", model.PositionWR, 8, false},
		{"WR3", model.PositionWR, 7, false},
		{"WR4", model.PositionWR, 6, false},
		{"TE1", model.PositionTE, 2, false},
		{"TE2", model.PositionTE, 5, false},
		{"K", model.PositionK, 1, false},
	})

	starters := Greedy{}.Select(players)

	require.LessOrEqual(t, len(starters), MaxStarters())
	seen := map[*model.Player]bool{}
	for _, s := range starters {
		assert.False(t, s.Player.Injured(), "%s is injured", s.Player.Name())
		assert.False(t, seen[s.Player], "%s selected twice", s.Player.Name())
		seen[s.Player] = true
	}
	assert.Equal(t, []string{"QB2", "RB1", "RB3", "WR1", "WR2", "TE2", "K", "WR3", "WR4"}, names(starters))
}

func TestGreedy_MissingPositionDegrades(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{
		{"QB", model.PositionQB, 18, false},
		{"RB", model.PositionRB, 12, false},
		{"WR", model.PositionWR, 10, false},
		{"K", model.PositionK, 6, false},
	})

	starters := Greedy{}.Select(players)

	assert.Equal(t, []string{"QB", "RB", "WR", "K"}, names(starters))
	for _, s := range starters {
		assert.NotEqual(t, model.SlotDST, s.Slot)
		assert.NotEqual(t, model.SlotFlex, s.Slot)
	}
}

func TestGreedy_TiesKeepRosterOrder(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{
		{"WR-a", model.PositionWR, 10, false},
		{"WR-b", model.PositionWR, 10, false},
		{"WR-c", model.PositionWR, 10, false},
		{"TE-a", model.PositionTE, 10, false},
		{"WR-d", model.PositionWR, 10, false},
	})

	starters := Greedy{}.Select(players)

	assert.Equal(t, []string{"WR-a", "WR-b", "TE-a", "WR-c", "WR-d"}, names(starters))
}

func TestGreedy_BaseSlotsFilledBeforeFlex(t *testing.T) {
	// A weak second RB still takes the RB slot ahead of a strong WR3 who only
	// competes for FLEX.
	players := rosterWithOutcomes(t, []outcome{
		{"RB1", model.PositionRB, 20, false},
		{"RB2", model.PositionRB, 1, false},
		{"WR1", model.PositionWR, 25, false},
		{"WR2", model.PositionWR, 24, false},
		{"WR3", model.PositionWR, 23, false},
	})

	starters := Greedy{}.Select(players)

	assert.Equal(t, []string{"RB1", "RB2", "WR1", "WR2", "WR3"}, names(starters))
	assert.Equal(t, model.SlotRB, starters[1].Slot)
}

func TestGreedy_EmptyRoster(t *testing.T) {
	assert.Empty(t, Greedy{}.Select(nil))
}

func TestEntriesAndRequirements(t *testing.T) {
	players := rosterWithOutcomes(t, []outcome{{"K", model.PositionK, 7.5, false}})
	entries := Entries(Greedy{}.Select(players))
	require.Len(t, entries, 1)
	assert.Equal(t, model.LineupEntry{Name: "K", Position: model.PositionK, Slot: model.SlotK, Points: 7.5}, entries[0])

	assert.Equal(t, 10, MaxStarters())
	assert.Len(t, Requirements(), 7)

	sel, ok := New("greedy")
	require.True(t, ok)
	assert.Equal(t, "greedy", sel.Name())
	_, ok = New("optimal")
	assert.False(t, ok)
}
