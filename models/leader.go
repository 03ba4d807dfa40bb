package models

// Leader is a catalog entry for an in-game leader card. Declared leaders on
// matches are free text; the catalog backs the picker and leader stats.
type Leader struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	Color    string `json:"color,omitempty"`    // e.g., "Red", "Green/Blue"
	SetCode  string `json:"set_code,omitempty"` // e.g., "OP01-001"
	ImageURL string `json:"image_url,omitempty"`

	Timestamps
}
