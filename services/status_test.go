package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"optcg-tracker/models"
)

func TestDeriveTournamentStatus(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want models.TournamentStatus
	}{
		{"well before start", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), models.TournamentUpcoming},
		{"just before start", start.Add(-time.Second), models.TournamentUpcoming},
		{"exactly at start", start, models.TournamentOngoing},
		{"mid tournament", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), models.TournamentOngoing},
		{"just before end", end.Add(-time.Second), models.TournamentOngoing},
		{"exactly at end", end, models.TournamentCompleted},
		{"day after end", time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), models.TournamentCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTournamentStatus(tt.now, start, end))
		})
	}
}
