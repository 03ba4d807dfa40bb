package models

import (
	"time"
)

type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "UPCOMING"
	TournamentOngoing   TournamentStatus = "ONGOING"
	TournamentCompleted TournamentStatus = "COMPLETED"
)

type TournamentDuration string

const (
	DurationOneDay   TournamentDuration = "ONE_DAY"
	DurationOneWeek  TournamentDuration = "ONE_WEEK"
	DurationOneMonth TournamentDuration = "ONE_MONTH"
)

// ValidDuration reports whether d is a known duration category.
func ValidDuration(d TournamentDuration) bool {
	return d == DurationOneDay || d == DurationOneWeek || d == DurationOneMonth
}

// Tournament is a time-boxed event players enroll in and report matches for.
// Status is derived from the clock against StartDate/EndDate; COMPLETED is
// terminal and never rolls back.
type Tournament struct {
	ID          string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string             `json:"name" gorm:"not null"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"start_date" gorm:"not null;index"`
	EndDate     time.Time          `json:"end_date" gorm:"not null;index"`
	Duration    TournamentDuration `json:"duration" gorm:"type:varchar(16);not null"`
	MaxPlayers  *int               `json:"max_players,omitempty"` // nil = uncapped
	Status      TournamentStatus   `json:"status" gorm:"type:varchar(16);not null;default:'UPCOMING';index"`
	PosterURL   string             `json:"poster_url,omitempty"`
	CreatedByID string             `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedBy    User                    `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Participants []TournamentParticipant `json:"participants,omitempty" gorm:"foreignKey:TournamentID"`
	Matches      []Match                 `json:"matches,omitempty" gorm:"foreignKey:TournamentID"`

	// Calculated fields (not stored in DB)
	ParticipantCount int64 `json:"participant_count,omitempty" gorm:"-"`
	MatchCount       int64 `json:"match_count,omitempty" gorm:"-"`

	Timestamps
}
