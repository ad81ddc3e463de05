package models

import "time"

// Medication represents the medications table.
// A medication has no independent existence beyond its owning patient.
type Medication struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Dosage       string    `gorm:"size:100" json:"dosage"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Medication model
func (Medication) TableName() string {
	return "medications"
}
