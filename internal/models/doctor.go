package models

import "time"

// Doctor represents the doctors table
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null;size:100" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash   string    `gorm:"not null;size:255" json:"-"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
