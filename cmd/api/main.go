package main

import (
	"os"
	"time"

	"season-sim/internal/api"
	"season-sim/internal/config"
	"season-sim/internal/logger"
	"season-sim/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.NewServer()
	if err != nil {
		logger.New("info", "", os.Stderr).WithError(err).Fatal("Invalid server configuration")
	}

	format := cfg.LogFormat
	if cfg.Production() {
		format = "json"
	}
	log := logger.New(cfg.LogLevel, format, os.Stdout)
	if envErr != nil && !os.IsNotExist(envErr) {
		log.WithError(envErr).Warn("Could not load .env file")
	}

	if info, err := os.Stat(cfg.RosterDir); err == nil && info.IsDir() {
		log.WithField("dir", cfg.RosterDir).Info("Roster directory found")
	} else {
		log.WithField("dir", cfg.RosterDir).Warn("Roster directory not found, presets disabled")
	}

	results := store.New(cfg.ResultTTL)
	stop := make(chan struct{})
	defer close(stop)
	go results.RunJanitor(5*time.Minute, stop)

	router := api.NewRouter(cfg, log, results)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("Starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
