package models

import (
	"time"
)

// DefaultAppointmentStatus is applied when a request leaves status empty.
const DefaultAppointmentStatus = "scheduled"

// AppointmentFields is the mutable part of an Appointment.
type AppointmentFields struct {
	DateTime time.Time `gorm:"column:datetime;not null" json:"datetime"`
	Reason   string    `gorm:"size:255;not null" json:"reason"`
	Doctor   string    `gorm:"size:255;not null" json:"doctor"`
	Status   string    `gorm:"size:50;not null" json:"status"`
}

// Appointment represents a scheduled visit for a patient
type Appointment struct {
	BaseModel
	PatientID uint `gorm:"not null;index" json:"patient_id"`
	AppointmentFields

	// Relations
	Patient *Patient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
