package models

import (
	"time"
)

// MedicalNoteFields is the mutable part of a MedicalNote.
type MedicalNoteFields struct {
	Text string `gorm:"type:text;not null" json:"text"`
}

// MedicalNote is a free-text clinical note. CreatedAt is set once on insert.
type MedicalNote struct {
	BaseModel
	PatientID uint `gorm:"not null;index" json:"patient_id"`
	MedicalNoteFields
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Patient *Patient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
