package store

import (
	"context"

	"medapp-server/internal/models"
)

// CreateNote adds a note to an existing patient. CreatedAt is assigned here.
func (s *RecordStore) CreateNote(ctx context.Context, patientID uint, fields models.MedicalNoteFields) (*models.MedicalNote, error) {
	n := &models.MedicalNote{PatientID: patientID, MedicalNoteFields: fields, CreatedAt: s.now()}
	if err := createChild(s.db.WithContext(ctx), patientID, n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetNote returns ErrNoteNotFound when id is unknown.
func (s *RecordStore) GetNote(ctx context.Context, id uint) (*models.MedicalNote, error) {
	return first[models.MedicalNote](s.db.WithContext(ctx), id, ErrNoteNotFound)
}

// UpdateNote replaces the text of a note.
func (s *RecordStore) UpdateNote(ctx context.Context, id uint, fields models.MedicalNoteFields) (*models.MedicalNote, error) {
	return updateRecord(s.db.WithContext(ctx), id, ErrNoteNotFound, func(n *models.MedicalNote) {
		n.MedicalNoteFields = fields
	})
}

// DeleteNote removes a note.
func (s *RecordStore) DeleteNote(ctx context.Context, id uint) error {
	return deleteByID[models.MedicalNote](s.db.WithContext(ctx), id, ErrNoteNotFound)
}

// ListNotes returns the notes of a patient.
func (s *RecordStore) ListNotes(ctx context.Context, patientID uint) ([]models.MedicalNote, error) {
	return listByPatient[models.MedicalNote](s.db.WithContext(ctx), patientID)
}
