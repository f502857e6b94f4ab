package handlers

import (
	"net/http"

	"season-sim/internal/api/models"
	"season-sim/internal/lineup"

	"github.com/gin-gonic/gin"
)

// ListSlots handles GET /api/v1/lineup/slots
func ListSlots(c *gin.Context) {
	reqs := lineup.Requirements()
	slots := make([]models.SlotInfo, 0, len(reqs))
	for _, r := range reqs {
		eligible := make([]string, len(r.Eligible))
		for i, p := range r.Eligible {
			eligible[i] = string(p)
		}
		slots = append(slots, models.SlotInfo{
			Slot:     string(r.Slot),
			Count:    r.Count,
			Eligible: eligible,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"slots":        slots,
		"max_starters": lineup.MaxStarters(),
		"selectors":    []string{lineup.Greedy{}.Name()},
	})
}
