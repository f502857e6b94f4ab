package handlers

import (
	"net/http"

	"season-sim/internal/api/models"
	"season-sim/internal/roster"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RosterHandler handles roster preset requests
type RosterHandler struct {
	dir string
	log logrus.FieldLogger
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(dir string, log logrus.FieldLogger) *RosterHandler {
	return &RosterHandler{dir: dir, log: log}
}

// ListRosters handles GET /api/v1/rosters
func (h *RosterHandler) ListRosters(c *gin.Context) {
	rosters := []models.RosterInfo{}

	presets, skipped, err := roster.ListPresets(h.dir)
	if err != nil {
		h.log.WithError(err).WithField("dir", h.dir).Warn("Roster directory not readable")
		c.JSON(http.StatusOK, gin.H{"rosters": rosters})
		return
	}
	for name, err := range skipped {
		h.log.WithError(err).WithField("file", name).Warn("Skipping invalid roster preset")
	}

	for _, p := range presets {
		rosters = append(rosters, models.RosterInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			File:        p.File,
			Players:     p.Players,
		})
	}
	c.JSON(http.StatusOK, gin.H{"rosters": rosters})
}
