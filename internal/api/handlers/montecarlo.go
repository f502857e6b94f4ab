package handlers

import (
	"fmt"
	"net/http"

	"season-sim/internal/analysis"
	"season-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// MonteCarloHandler handles repeated-season requests
type MonteCarloHandler struct {
	rosterDir     string
	maxIterations int
}

// NewMonteCarloHandler creates a new Monte Carlo handler
func NewMonteCarloHandler(rosterDir string, maxIterations int) *MonteCarloHandler {
	return &MonteCarloHandler{rosterDir: rosterDir, maxIterations: maxIterations}
}

// Run handles POST /api/v1/montecarlo
func (h *MonteCarloHandler) Run(c *gin.Context) {
	var req models.MonteCarloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if h.maxIterations > 0 && req.Iterations > h.maxIterations {
		abortError(c, http.StatusBadRequest, "TOO_MANY_ITERATIONS",
			fmt.Sprintf("iterations must be <= %d", h.maxIterations),
			map[string]interface{}{"max_iterations": h.maxIterations})
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

	seed := seedOrNow(req.Seed)
	mc, err := analysis.MonteCarlo(c.Request.Context(), engine, players, req.Iterations, seed)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err.Error(), nil)
		return
	}

	d := mc.Season
	c.JSON(http.StatusOK, models.MonteCarloResponse{
		Iterations: mc.Iterations,
		Seed:       mc.Seed,
		Distribution: models.Distribution{
			Count:  d.Count,
			Mean:   d.Mean,
			StdDev: d.StdDev,
			Min:    d.Min,
			Max:    d.Max,
			P05:    d.P05,
			P50:    d.P50,
			P95:    d.P95,
		},
		WeekMeans: mc.WeekMeans,
		Starters:  convertStarters(mc.Starters, 0),
	})
}
