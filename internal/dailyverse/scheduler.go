package dailyverse

import (
	"context"
	"log"
	"time"

	"github.com/scripturalzealous/zealous-api/pkg/config"
)

// StartScheduler keeps the shared daily verse warm.
// - In dev: runs every hour.
// - In prod: runs every 24 hours.
func (s *DailyVerseService) StartScheduler(ctx context.Context) {
	tickerDuration := time.Hour

	if config.GetAppEnv() == "production" {
		tickerDuration = 24 * time.Hour
	}

	ticker := time.NewTicker(tickerDuration)
	defer ticker.Stop()

	log.Printf("DailyVerse Scheduler started (%s interval)\n", tickerDuration)

	// Warm the cache once at startup so the first visitor of the day
	// doesn't pay the gateway latency.
	s.RefreshShared(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped gracefully")
			return
		case <-ticker.C:
			s.RefreshShared(ctx)
		}
	}
}
