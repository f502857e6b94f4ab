package handlers

import (
	"net/http"

	"season-sim/internal/analysis"
	"season-sim/internal/api/models"
	"season-sim/internal/model"
	"season-sim/internal/random"
	"season-sim/internal/season"
	"season-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SeasonHandler handles season simulation requests
type SeasonHandler struct {
	rosterDir string
	results   *store.ResultStore
	log       logrus.FieldLogger
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(rosterDir string, results *store.ResultStore, log logrus.FieldLogger) *SeasonHandler {
	return &SeasonHandler{rosterDir: rosterDir, results: results, log: log}
}

// RunSeason handles POST /api/v1/season
func (h *SeasonHandler) RunSeason(c *gin.Context) {
	var req models.SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	players, ok := resolveRoster(c, h.rosterDir, req.Roster)
	if !ok {
		return
	}
	engine, ok := buildEngine(c, req.Options)
	if !ok {
		return
	}
	engine.Log = h.log

	team, err := season.NewTeam(players)
	if err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_ROSTER", err.Error(), nil)
		return
	}

	seed := seedOrNow(req.Seed)
	result, err := engine.Run(c.Request.Context(), team, random.NewSeeded(seed))
	if err != nil {
		completed := 0
		if result != nil {
			completed = len(result.Weeks)
		}
		abortError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err.Error(), map[string]interface{}{
			"weeks_completed": completed,
		})
		return
	}
	h.results.Put(result)

	c.JSON(http.StatusOK, h.buildResponse(result, seed, req.Options.IncludeLineups))
}

// GetWeeks handles GET /api/v1/season/:id/weeks
func (h *SeasonHandler) GetWeeks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID", nil)
		return
	}
	result, ok := h.results.Get(id)
	if !ok {
		abortError(c, http.StatusNotFound, "NOT_FOUND", "no stored season with that id (results expire)", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String(), "weeks": convertWeeks(result.Weeks, true)})
}

func (h *SeasonHandler) buildResponse(result *season.Result, seed int64, includeLineups bool) models.SeasonResponse {
	return models.SeasonResponse{
		ID:       result.RunID.String(),
		Status:   string(result.State),
		Seed:     seed,
		Selector: result.Selector,
		Sampling: string(result.Sampling),
		Summary:  buildSummary(result),
		Weeks:    convertWeeks(result.Weeks, includeLineups),
	}
}

func buildSummary(result *season.Result) models.SeasonSummary {
	s := models.SeasonSummary{SeasonTotal: result.SeasonTotal}
	if len(result.Weeks) == 0 {
		return s
	}
	s.WeeklyMean = result.SeasonTotal / float64(len(result.Weeks))
	best, worst := result.Weeks[0], result.Weeks[0]
	for _, w := range result.Weeks[1:] {
		if w.Total > best.Total {
			best = w
		}
		if w.Total < worst.Total {
			worst = w
		}
	}
	s.BestWeek = best.Week
	s.WorstWeek = worst.Week
	s.TopStarters = convertStarters(analysis.RankStarters(result.Weeks), 5)
	return s
}

func convertWeeks(weeks []model.WeeklyResult, includeLineups bool) []models.WeekResult {
	out := make([]models.WeekResult, len(weeks))
	for i, w := range weeks {
		out[i] = models.WeekResult{Week: w.Week, Total: w.Total}
		if !includeLineups {
			continue
		}
		out[i].Lineup = make([]models.LineupEntry, len(w.Lineup))
		for j, e := range w.Lineup {
			out[i].Lineup[j] = models.LineupEntry{
				Slot:     string(e.Slot),
				Name:     e.Name,
				Position: string(e.Position),
				Points:   e.Points,
			}
		}
	}
	return out
}
