package repository

import (
	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends a new audit log entry
func (r *AuditRepository) Create(actorType string, actorID *uint, action string, details string) error {
	log := &models.AuditLog{
		ActorType: actorType,
		ActorID:   actorID,
		Action:    action,
		Details:   details,
	}
	return r.db.Create(log).Error
}
