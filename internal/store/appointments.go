package store

import (
	"context"

	"medapp-server/internal/models"
)

func withDefaultStatus(fields models.AppointmentFields) models.AppointmentFields {
	if fields.Status == "" {
		fields.Status = models.DefaultAppointmentStatus
	}
	return fields
}

// CreateAppointment books an appointment for an existing patient.
func (s *RecordStore) CreateAppointment(ctx context.Context, patientID uint, fields models.AppointmentFields) (*models.Appointment, error) {
	a := &models.Appointment{PatientID: patientID, AppointmentFields: withDefaultStatus(fields)}
	if err := createChild(s.db.WithContext(ctx), patientID, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAppointment returns ErrAppointmentNotFound when id is unknown.
func (s *RecordStore) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return first[models.Appointment](s.db.WithContext(ctx), id, ErrAppointmentNotFound)
}

// UpdateAppointment replaces every mutable field of the appointment.
func (s *RecordStore) UpdateAppointment(ctx context.Context, id uint, fields models.AppointmentFields) (*models.Appointment, error) {
	return updateRecord(s.db.WithContext(ctx), id, ErrAppointmentNotFound, func(a *models.Appointment) {
		a.AppointmentFields = withDefaultStatus(fields)
	})
}

// DeleteAppointment removes an appointment.
func (s *RecordStore) DeleteAppointment(ctx context.Context, id uint) error {
	return deleteByID[models.Appointment](s.db.WithContext(ctx), id, ErrAppointmentNotFound)
}

// ListAppointments returns the appointments of a patient.
func (s *RecordStore) ListAppointments(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return listByPatient[models.Appointment](s.db.WithContext(ctx), patientID)
}
