package models

import "fmt"

type MatchStatus string

const (
	MatchPending  MatchStatus = "PENDING"
	MatchApproved MatchStatus = "APPROVED"
	MatchRejected MatchStatus = "REJECTED"
)

type MatchResult string

// Result is always relative to player1: WIN means player1 won.
const (
	ResultWin  MatchResult = "WIN"
	ResultLoss MatchResult = "LOSS"
)

// Match is a reported game between two players, pending until a judge or
// admin reviews it. Only APPROVED matches count toward rankings.
type Match struct {
	ID            string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Player1ID     string      `json:"player1_id" gorm:"type:uuid;not null;index"`
	Player2ID     string      `json:"player2_id" gorm:"type:uuid;not null;index"`
	Player1Leader string      `json:"player1_leader" gorm:"not null"`
	Player2Leader string      `json:"player2_leader" gorm:"not null"`
	Result        MatchResult `json:"result" gorm:"type:varchar(8);not null"`
	TournamentID  *string     `json:"tournament_id,omitempty" gorm:"type:uuid;index"` // nil = casual match
	Notes         string      `json:"notes,omitempty"`
	Status        MatchStatus `json:"status" gorm:"type:varchar(16);not null;default:'PENDING';index"`
	ApprovedByID  *string     `json:"approved_by_id,omitempty" gorm:"type:uuid"`

	// PairKey holds the unordered player pair plus tournament context while the
	// match is PENDING or APPROVED. The unique index serializes concurrent
	// submissions for the same pair; rejection clears it so the pair can
	// re-submit.
	PairKey *string `json:"-" gorm:"uniqueIndex"`

	// Relationships
	Player1    User        `json:"player1,omitempty" gorm:"foreignKey:Player1ID"`
	Player2    User        `json:"player2,omitempty" gorm:"foreignKey:Player2ID"`
	Tournament *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	ApprovedBy *User       `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`

	Timestamps
}

// MatchPairKey builds the uniqueness key for a player pair within a tournament
// context. The pair is sorted so the key is independent of who reported the
// match; casual matches live in their own "casual" bucket.
func MatchPairKey(player1ID, player2ID string, tournamentID *string) string {
	lo, hi := player1ID, player2ID
	if hi < lo {
		lo, hi = hi, lo
	}
	scope := "casual"
	if tournamentID != nil && *tournamentID != "" {
		scope = *tournamentID
	}
	return fmt.Sprintf("%s:%s:%s", lo, hi, scope)
}

// Reviewed reports whether the match has left the PENDING state.
func (m *Match) Reviewed() bool {
	return m.Status != MatchPending
}
