package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"optcg-tracker/models"
)

// DeriveTournamentStatus computes the status that should hold at the given
// instant: before the start date a tournament is UPCOMING, within
// [start, end) it is ONGOING, and from the end date on it is COMPLETED.
func DeriveTournamentStatus(now, startDate, endDate time.Time) models.TournamentStatus {
	if now.Before(startDate) {
		return models.TournamentUpcoming
	}
	if now.Before(endDate) {
		return models.TournamentOngoing
	}
	return models.TournamentCompleted
}

// applyDerivedStatus refreshes a tournament's stored status from the clock and
// persists the change. COMPLETED is terminal, so a stored COMPLETED status is
// never rolled back even if the dates were edited afterwards. Safe to race:
// repeated invocations converge on the same value.
func applyDerivedStatus(db *gorm.DB, t *models.Tournament) {
	if t.Status == models.TournamentCompleted {
		return
	}
	derived := DeriveTournamentStatus(time.Now(), t.StartDate, t.EndDate)
	if derived == t.Status {
		return
	}
	if err := db.Model(&models.Tournament{}).
		Where("id = ? AND status <> ?", t.ID, models.TournamentCompleted).
		Update("status", derived).Error; err != nil {
		log.Printf("[STATUS] failed to update tournament %s: %v", t.ID, err)
		return
	}
	t.Status = derived
}

// ReconcileTournamentStatuses advances every tournament whose stored status
// lags the clock. Used by the scheduler and the update-status endpoint.
func ReconcileTournamentStatuses(db *gorm.DB) error {
	now := time.Now()

	if err := db.Model(&models.Tournament{}).
		Where("status = ? AND start_date <= ? AND end_date > ?",
			models.TournamentUpcoming, now, now).
		Update("status", models.TournamentOngoing).Error; err != nil {
		return err
	}

	return db.Model(&models.Tournament{}).
		Where("status <> ? AND end_date <= ?", models.TournamentCompleted, now).
		Update("status", models.TournamentCompleted).Error
}
