package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"medapp-server/internal/models"
)

// CreatePatient inserts a patient.
func (s *RecordStore) CreatePatient(ctx context.Context, fields models.PatientFields) (*models.Patient, error) {
	p := &models.Patient{PatientFields: fields}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

// GetPatient returns ErrPatientNotFound when id is unknown.
func (s *RecordStore) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	return first[models.Patient](s.db.WithContext(ctx), id, ErrPatientNotFound)
}

// UpdatePatient replaces every mutable field of the patient.
func (s *RecordStore) UpdatePatient(ctx context.Context, id uint, fields models.PatientFields) (*models.Patient, error) {
	return updateRecord(s.db.WithContext(ctx), id, ErrPatientNotFound, func(p *models.Patient) {
		p.PatientFields = fields
	})
}

// DeletePatient removes the patient together with its appointments, notes,
// vital signs and photos.
func (s *RecordStore) DeletePatient(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := first[models.Patient](tx, id, ErrPatientNotFound); err != nil {
			return err
		}
		for _, child := range []interface{}{
			&models.Appointment{},
			&models.MedicalNote{},
			&models.VitalSign{},
			&models.Photo{},
		} {
			if err := tx.Where("patient_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete records of patient %d: %w", id, err)
			}
		}
		return deleteByID[models.Patient](tx, id, ErrPatientNotFound)
	})
}

// ListPatients returns patients in insertion order. A non-empty search keeps
// only names containing it, ignoring case.
func (s *RecordStore) ListPatients(ctx context.Context, search string) ([]models.Patient, error) {
	term := strings.ToLower(search)
	db := s.db.WithContext(ctx)
	// sqlite's LOWER only folds ASCII, so the filter runs here instead.
	foldInSQL := term != "" && db.Dialector.Name() != "sqlite"

	q := db.Order("id")
	if foldInSQL {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(term)+"%")
	}

	patients := []models.Patient{}
	if err := q.Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	if term == "" || foldInSQL {
		return patients, nil
	}

	matched := patients[:0]
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
