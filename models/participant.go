package models

import "time"

type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "PENDING"
	ParticipantApproved ParticipantStatus = "APPROVED"
)

// TournamentParticipant links a user to a tournament. The composite unique
// index guarantees one participation row per user per tournament; concurrent
// joins surface as a duplicate-key error.
type TournamentParticipant struct {
	ID           string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TournamentID string            `json:"tournament_id" gorm:"type:uuid;not null;uniqueIndex:idx_tournament_user"`
	UserID       string            `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_tournament_user"`
	Status       ParticipantStatus `json:"status" gorm:"type:varchar(16);not null;default:'APPROVED'"`
	JoinedAt     time.Time         `json:"joined_at" gorm:"autoCreateTime"`

	// Relationships
	Tournament Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	User       User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
