package models

import (
	"time"
)

// PhotoFields is the mutable part of a Photo.
type PhotoFields struct {
	URL     string  `gorm:"size:1024;not null" json:"url"`
	Caption *string `gorm:"size:255" json:"caption"`
}

// Photo references an image of a patient.
type Photo struct {
	BaseModel
	PatientID uint `gorm:"not null;index" json:"patient_id"`
	PhotoFields
	TakenAt time.Time `gorm:"not null" json:"taken_at"`

	Patient *Patient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
