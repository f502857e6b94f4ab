package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"season-sim/internal/analysis"
	"season-sim/internal/api/models"
	"season-sim/internal/lineup"
	"season-sim/internal/model"
	"season-sim/internal/roster"
	"season-sim/internal/season"

	"github.com/gin-gonic/gin"
)

func abortError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// resolveRoster builds validated players from inline records or a preset.
// On failure it writes the error response and returns ok=false.
func resolveRoster(c *gin.Context, rosterDir string, src models.RosterSource) ([]*model.Player, bool) {
	var (
		players []*model.Player
		err     error
	)
	switch {
	case len(src.Players) > 0 && src.Preset != "":
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", "roster.players and roster.preset are mutually exclusive", nil)
		return nil, false
	case len(src.Players) > 0:
		records := make([]roster.Record, 0, len(src.Players))
		for _, p := range src.Players {
			records = append(records, roster.Record{
				Name:             p.Name,
				Position:         p.Position,
				SeasonProjection: p.SeasonProjection,
				InjuryProb:       p.InjuryProb,
				StdDev:           p.StdDev,
			})
		}
		players, err = roster.FromRecords(records)
	case src.Preset != "":
		var f *roster.File
		f, err = roster.LoadPreset(rosterDir, src.Preset)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, os.ErrNotExist) {
				status = http.StatusNotFound
			}
			abortError(c, status, "ROSTER_NOT_FOUND", err.Error(), nil)
			return nil, false
		}
		players, err = f.Build()
	default:
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", "roster.players or roster.preset is required", nil)
		return nil, false
	}

	if err != nil {
		var invalid *model.InvalidPlayerDataError
		if errors.As(err, &invalid) {
			abortError(c, http.StatusBadRequest, "INVALID_PLAYER_DATA", err.Error(), map[string]interface{}{
				"row":   invalid.Row,
				"name":  invalid.Name,
				"field": invalid.Field,
				"value": invalid.Value,
			})
			return nil, false
		}
		abortError(c, http.StatusBadRequest, "INVALID_ROSTER", err.Error(), nil)
		return nil, false
	}
	if len(players) == 0 {
		abortError(c, http.StatusBadRequest, "INVALID_ROSTER", season.ErrEmptyRoster.Error(), nil)
		return nil, false
	}
	return players, true
}

func buildEngine(c *gin.Context, opts models.SeasonOptions) (*season.Engine, bool) {
	mode, err := season.ParseSamplingMode(opts.Sampling)
	if err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error(), nil)
		return nil, false
	}
	sel, ok := lineup.New(opts.Selector)
	if !ok {
		abortError(c, http.StatusBadRequest, "INVALID_OPTIONS", "unsupported selector: "+opts.Selector, nil)
		return nil, false
	}
	e := season.New()
	e.Sampling = mode
	e.Selector = sel
	return e, true
}

func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func convertStarters(ranks []analysis.StarterRank, limit int) []models.StarterRow {
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]models.StarterRow, len(ranks))
	for i, r := range ranks {
		out[i] = models.StarterRow{
			Name:       r.Name,
			Position:   string(r.Position),
			Starts:     r.Starts,
			FlexStarts: r.FlexStarts,
			Points:     r.Points,
		}
	}
	return out
}
