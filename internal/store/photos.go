package store

import (
	"context"

	"medapp-server/internal/models"
)

// CreatePhoto attaches a photo URL to an existing patient.
func (s *RecordStore) CreatePhoto(ctx context.Context, patientID uint, fields models.PhotoFields) (*models.Photo, error) {
	p := &models.Photo{PatientID: patientID, PhotoFields: fields, TakenAt: s.now()}
	if err := createChild(s.db.WithContext(ctx), patientID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPhoto returns ErrPhotoNotFound when id is unknown.
func (s *RecordStore) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	return first[models.Photo](s.db.WithContext(ctx), id, ErrPhotoNotFound)
}

// UpdatePhoto replaces the URL and caption of a photo.
func (s *RecordStore) UpdatePhoto(ctx context.Context, id uint, fields models.PhotoFields) (*models.Photo, error) {
	return updateRecord(s.db.WithContext(ctx), id, ErrPhotoNotFound, func(p *models.Photo) {
		p.PhotoFields = fields
	})
}

// DeletePhoto removes a photo record. The stored object is kept.
func (s *RecordStore) DeletePhoto(ctx context.Context, id uint) error {
	return deleteByID[models.Photo](s.db.WithContext(ctx), id, ErrPhotoNotFound)
}

// ListPhotos returns the photos of a patient.
func (s *RecordStore) ListPhotos(ctx context.Context, patientID uint) ([]models.Photo, error) {
	return listByPatient[models.Photo](s.db.WithContext(ctx), patientID)
}
