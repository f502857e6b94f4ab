package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"season-sim/internal/api/models"
	"season-sim/internal/config"
	"season-sim/internal/logger"
	"season-sim/internal/roster"
	"season-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testPlayers = []models.PlayerInput{
	{Name: "QB", Position: "QB", SeasonProjection: 340, InjuryProb: 0.05, StdDev: 7},
	{Name: "RB1", Position: "RB", SeasonProjection: 250, InjuryProb: 0.08, StdDev: 8},
	{Name: "RB2", Position: "RB", SeasonProjection: 200, InjuryProb: 0.08, StdDev: 7},
	{Name: "WR1", Position: "WR", SeasonProjection: 240, InjuryProb: 0.05, StdDev: 8},
	{Name: "WR2", Position: "WR", SeasonProjection: 210, InjuryProb: 0.05, StdDev: 8},
	{Name: "TE", Position: "TE", SeasonProjection: 150, InjuryProb: 0.06, StdDev: 5},
	{Name: "K", Position: "K", SeasonProjection: 140, InjuryProb: 0.01, StdDev: 4},
	{Name: "DST", Position: "DST", SeasonProjection: 120, StdDev: 6},
	{Name: "RB3", Position: "RB", SeasonProjection: 130, InjuryProb: 0.05, StdDev: 6},
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Server{
		Env:           "test",
		RosterDir:     dir,
		CORSOrigins:   []string{"*"},
		MaxIterations: 100,
	}
	return NewRouter(cfg, logger.Discard(), store.New(time.Hour)), dir
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSeason_RunAndFetchWeeks(t *testing.T) {
	r, _ := newTestRouter(t)
	seed := int64(42)

	w := do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster:  models.RosterSource{Players: testPlayers},
		Seed:    &seed,
		Options: models.SeasonOptions{IncludeLineups: true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SeasonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "COMPLETED", resp.Status)
	assert.Equal(t, int64(42), resp.Seed)
	require.Len(t, resp.Weeks, 17)
	for i, wk := range resp.Weeks {
		assert.Equal(t, i+1, wk.Week)
		assert.LessOrEqual(t, len(wk.Lineup), 9)
	}

	again := do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster: models.RosterSource{Players: testPlayers},
		Seed:   &seed,
	})
	require.Equal(t, http.StatusOK, again.Code)
	var resp2 models.SeasonResponse
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &resp2))
	assert.Equal(t, resp.Summary.SeasonTotal, resp2.Summary.SeasonTotal)
	assert.Empty(t, resp2.Weeks[0].Lineup)

	w = do(t, r, http.MethodGet, "/api/v1/season/"+resp.ID+"/weeks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored struct {
		ID    string              `json:"id"`
		Weeks []models.WeekResult `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, resp.ID, stored.ID)
	assert.Equal(t, resp.Weeks, stored.Weeks)
}

func TestSeason_InvalidPlayerData(t *testing.T) {
	r, _ := newTestRouter(t)
	players := append([]models.PlayerInput{}, testPlayers...)
	players[3].InjuryProb = 1.5

	w := do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster: models.RosterSource{Players: players},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_PLAYER_DATA", resp.Error.Code)
	assert.Equal(t, "InjuryProb", resp.Error.Details["field"])
	assert.Equal(t, float64(4), resp.Error.Details["row"])
}

func TestSeason_BadRequests(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster:  models.RosterSource{Players: testPlayers},
		Options: models.SeasonOptions{Sampling: "distributed"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster: models.RosterSource{Preset: "nope"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/season/not-a-uuid/weeks", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/season/00000000-0000-0000-0000-000000000000/weeks", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeason_FromPreset(t *testing.T) {
	r, dir := newTestRouter(t)
	records := make([]roster.Record, 0, len(testPlayers))
	for _, p := range testPlayers {
		records = append(records, roster.Record{
			Name: p.Name, Position: p.Position, SeasonProjection: p.SeasonProjection,
			InjuryProb: p.InjuryProb, StdDev: p.StdDev,
		})
	}
	require.NoError(t, roster.SaveYAML(filepath.Join(dir, "league_winner.yaml"), &roster.File{Name: "League Winner", Players: records}))

	w := do(t, r, http.MethodGet, "/api/v1/rosters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Rosters []models.RosterInfo `json:"rosters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Rosters, 1)
	assert.Equal(t, "league_winner", list.Rosters[0].ID)
	assert.Equal(t, 9, list.Rosters[0].Players)

	w = do(t, r, http.MethodPost, "/api/v1/season", models.SeasonRequest{
		Roster: models.RosterSource{Preset: "league_winner"},
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMonteCarlo(t *testing.T) {
	r, _ := newTestRouter(t)
	seed := int64(7)

	w := do(t, r, http.MethodPost, "/api/v1/montecarlo", models.MonteCarloRequest{
		Roster:     models.RosterSource{Players: testPlayers},
		Seed:       &seed,
		Iterations: 10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.MonteCarloResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Distribution.Count)
	assert.Len(t, resp.WeekMeans, 17)
	assert.NotEmpty(t, resp.Starters)

	w = do(t, r, http.MethodPost, "/api/v1/montecarlo", models.MonteCarloRequest{
		Roster:     models.RosterSource{Players: testPlayers},
		Iterations: 1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLineupSlotsAndHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/lineup/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Slots       []models.SlotInfo `json:"slots"`
		MaxStarters int               `json:"max_starters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.MaxStarters)
	assert.Equal(t, "FLEX", resp.Slots[len(resp.Slots)-1].Slot)

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/season", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
