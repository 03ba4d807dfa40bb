// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartStatusScheduler reconciles tournament statuses every minute so the
// stored values track the clock even when nobody reads them. On-read
// derivation remains the fallback between runs.
func (s *TournamentService) StartStatusScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			if err := ReconcileTournamentStatuses(s.DB); err != nil {
				log.Printf("[Scheduler] status reconcile failed: %v", err)
			}
		}),
	)
}
