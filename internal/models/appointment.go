package models

import "time"

// Appointment represents the appointments table.
// An appointment always references exactly one doctor and one patient.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AppointmentTime time.Time `gorm:"not null;index" json:"appointment_time"`
	DoctorID        uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID       uint      `gorm:"not null;index" json:"patient_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
