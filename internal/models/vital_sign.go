package models

import (
	"time"
)

// VitalSignFields is the mutable part of a VitalSign. Every measurement is optional.
type VitalSignFields struct {
	Weight    *float64 `json:"weight"`
	Systolic  *int     `json:"systolic"`
	Diastolic *int     `json:"diastolic"`
	HeartRate *int     `json:"heart_rate"`
}

// VitalSign is a set of measurements taken at RecordedAt.
type VitalSign struct {
	BaseModel
	PatientID uint `gorm:"not null;index" json:"patient_id"`
	VitalSignFields
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`

	Patient *Patient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
