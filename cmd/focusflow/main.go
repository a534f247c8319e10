// Package main implements the entry point for the focusflow planning
// engine. It loads configuration, sets up logging, and builds a planner
// service over an in-process assignment store.
package main

import (
	"fmt"
	"log"

	"github.com/masddffee/FocusFlow-app-sub005/internal/config"
	"github.com/masddffee/FocusFlow-app-sub005/internal/platform/logger"
	"github.com/masddffee/FocusFlow-app-sub005/internal/service"
	"github.com/masddffee/FocusFlow-app-sub005/internal/store"
)

func main() {
	if _, err := initializeApp(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
}

// initializeApp loads configuration and wires the planner's components.
// Returns the assembled service and any initialization error.
func initializeApp() (*service.PlannerService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slogger := logger.Setup(cfg.Logging)

	planner, err := service.NewPlannerService(store.NewMemoryStore(), cfg, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build planner service: %w", err)
	}

	slogger.Info("planner initialized",
		"log_level", cfg.Logging.Level,
		"horizon_days", cfg.Scheduler.HorizonDays,
		"default_duration_minutes", cfg.Scheduler.DefaultDurationMinutes)

	return planner, nil
}
