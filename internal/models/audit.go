package models

import "time"

// AuditLog represents the audit_logs table
// Used for tracking registrations, logins and destructive actions
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ActorType string    `gorm:"size:20" json:"actor_type"`
	ActorID   *uint     `gorm:"index" json:"actor_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
