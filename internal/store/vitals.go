package store

import (
	"context"

	"medapp-server/internal/models"
)

// CreateVitalSign records measurements for an existing patient at the current time.
func (s *RecordStore) CreateVitalSign(ctx context.Context, patientID uint, fields models.VitalSignFields) (*models.VitalSign, error) {
	v := &models.VitalSign{PatientID: patientID, VitalSignFields: fields, RecordedAt: s.now()}
	if err := createChild(s.db.WithContext(ctx), patientID, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetVitalSign returns ErrVitalSignNotFound when id is unknown.
func (s *RecordStore) GetVitalSign(ctx context.Context, id uint) (*models.VitalSign, error) {
	return first[models.VitalSign](s.db.WithContext(ctx), id, ErrVitalSignNotFound)
}

// UpdateVitalSign replaces every measurement of a vital sign.
func (s *RecordStore) UpdateVitalSign(ctx context.Context, id uint, fields models.VitalSignFields) (*models.VitalSign, error) {
	return updateRecord(s.db.WithContext(ctx), id, ErrVitalSignNotFound, func(v *models.VitalSign) {
		v.VitalSignFields = fields
	})
}

// DeleteVitalSign removes a vital sign.
func (s *RecordStore) DeleteVitalSign(ctx context.Context, id uint) error {
	return deleteByID[models.VitalSign](s.db.WithContext(ctx), id, ErrVitalSignNotFound)
}

// ListVitalSigns returns the vital signs of a patient.
func (s *RecordStore) ListVitalSigns(ctx context.Context, patientID uint) ([]models.VitalSign, error) {
	return listByPatient[models.VitalSign](s.db.WithContext(ctx), patientID)
}
