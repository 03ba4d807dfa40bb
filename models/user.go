package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RolePlayer Role = "PLAYER"
	RoleJudge  Role = "JUDGE"
	RoleAdmin  Role = "ADMIN"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RolePlayer || r == RoleJudge || r == RoleAdmin
}

// CanManageTournaments covers tournament create/update and poster uploads.
func (r Role) CanManageTournaments() bool {
	return r == RoleJudge || r == RoleAdmin
}

// CanApproveMatches covers reviewing pending matches.
func (r Role) CanApproveMatches() bool {
	return r == RoleJudge || r == RoleAdmin
}

// User is a registered player, judge or admin.
type User struct {
	ID              string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name            string  `json:"name" gorm:"not null"`
	Email           string  `json:"email" gorm:"uniqueIndex;not null"`
	Password        string  `json:"-" gorm:"not null"`
	Role            Role    `json:"role" gorm:"type:varchar(16);not null;default:'PLAYER'"`
	PreferredLeader string  `json:"preferred_leader,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`

	Timestamps
}

// HashPassword returns the bcrypt hash for a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// BeforeCreate hashes the password before the user row is inserted. Password
// updates hash explicitly in the service layer.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
