package models

import "time"

// Patient represents the patients table
type Patient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Medications  []Medication  `gorm:"foreignKey:PatientID" json:"medications,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
