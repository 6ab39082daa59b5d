package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"medapp-server/internal/models"
)

// RecordStore owns patients and the records attached to them.
type RecordStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecordStore creates a RecordStore.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// first loads the record with id or returns notFound.
func first[T any](tx *gorm.DB, id uint, notFound *NotFoundError) (*T, error) {
	var rec T
	if err := tx.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find %s %d: %w", notFound.Resource, id, err)
	}
	return &rec, nil
}

func deleteByID[T any](tx *gorm.DB, id uint, notFound *NotFoundError) error {
	res := tx.Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", notFound.Resource, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// listByPatient returns records in insertion order. It never returns nil.
func listByPatient[T any](tx *gorm.DB, patientID uint) ([]T, error) {
	recs := []T{}
	if err := tx.Where("patient_id = ?", patientID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list by patient %d: %w", patientID, err)
	}
	return recs, nil
}

// createChild inserts rec after checking its patient exists, in one transaction.
func createChild[T any](tx *gorm.DB, patientID uint, rec *T) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
			return fmt.Errorf("check patient %d: %w", patientID, err)
		}
		if count == 0 {
			return ErrPatientNotFound
		}
		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("create record for patient %d: %w", patientID, err)
		}
		return nil
	})
}

// updateRecord loads the record, lets apply replace its mutable fields and saves it.
func updateRecord[T any](tx *gorm.DB, id uint, notFound *NotFoundError, apply func(*T)) (*T, error) {
	var rec *T
	err := tx.Transaction(func(tx *gorm.DB) error {
		var err error
		if rec, err = first[T](tx, id, notFound); err != nil {
			return err
		}
		apply(rec)
		if err := tx.Save(rec).Error; err != nil {
			return fmt.Errorf("update %s %d: %w", notFound.Resource, id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// escapeLike makes s match literally inside a LIKE pattern using '!' as escape.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
