package models

import "time"

// Principal types carried in sessions and audit records.
const (
	PrincipalDoctor  = "doctor"
	PrincipalPatient = "patient"
)

// RefreshToken represents the refresh_tokens table.
// Only the SHA-256 hash of the token ever touches the database.
type RefreshToken struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PrincipalType string    `gorm:"not null;size:20" json:"principal_type"`
	PrincipalID   uint      `gorm:"not null;index" json:"principal_id"`
	TokenHash     string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt     time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	Revoked       bool      `gorm:"default:false" json:"revoked"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
