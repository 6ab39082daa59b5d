package models

// PatientFields is the mutable part of a Patient. Updates replace it whole.
type PatientFields struct {
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	BirthDate    *string `gorm:"size:50" json:"birth_date"`
	Phone        *string `gorm:"size:50" json:"phone"`
	Email        *string `gorm:"size:255" json:"email"`
	NotesSummary *string `gorm:"type:text" json:"notes_summary"`
	PhotoURL     *string `gorm:"size:1024" json:"photo_url"`
}

// Patient represents a patient record
type Patient struct {
	BaseModel
	PatientFields
}
