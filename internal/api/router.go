package api

import (
	"net/http"

	"season-sim/internal/api/handlers"
	"season-sim/internal/api/middleware"
	"season-sim/internal/config"
	"season-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires middleware and routes.
func NewRouter(cfg *config.Server, log logrus.FieldLogger, results *store.ResultStore) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	seasonHandler := handlers.NewSeasonHandler(cfg.RosterDir, results, log)
	monteCarloHandler := handlers.NewMonteCarloHandler(cfg.RosterDir, cfg.MaxIterations)
	rosterHandler := handlers.NewRosterHandler(cfg.RosterDir, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stored_results": results.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/season", seasonHandler.RunSeason)
		api.GET("/season/:id/weeks", seasonHandler.GetWeeks)
		api.POST("/montecarlo", monteCarloHandler.Run)

		api.GET("/rosters", rosterHandler.ListRosters)
		api.GET("/lineup/slots", handlers.ListSlots)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
