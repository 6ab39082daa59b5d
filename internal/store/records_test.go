package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medapp-server/internal/models"
)

var testNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newRecordStore(t *testing.T) *RecordStore {
	t.Helper()
	s := NewRecordStore(newTestDB(t))
	s.now = func() time.Time { return testNow }
	return s
}

func mustPatient(t *testing.T, s *RecordStore, name string) *models.Patient {
	t.Helper()
	p, err := s.CreatePatient(context.Background(), models.PatientFields{Name: name})
	require.NoError(t, err)
	return p
}

func TestPatientCRUD(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()

	p, err := s.CreatePatient(ctx, models.PatientFields{Name: "Juan", Phone: strPtr("555-0100")})
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)

	got, err := s.GetPatient(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan", got.Name)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "555-0100", *got.Phone)

	updated, err := s.UpdatePatient(ctx, p.ID, models.PatientFields{Name: "Juan Pablo", Email: strPtr("jp@x.com")})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Nil(t, updated.Phone, "update replaces all mutable fields")

	got, err = s.GetPatient(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pablo", got.Name)
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.Email)
	assert.Equal(t, "jp@x.com", *got.Email)

	require.NoError(t, s.DeletePatient(ctx, p.ID))
	_, err = s.GetPatient(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientMissing(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()

	_, err := s.GetPatient(ctx, 9)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	_, err = s.UpdatePatient(ctx, 9, models.PatientFields{Name: "X"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.ErrorIs(t, s.DeletePatient(ctx, 9), ErrPatientNotFound)

	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestIDsAreNotReused(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()

	a := mustPatient(t, s, "A")
	b := mustPatient(t, s, "B")
	require.NoError(t, s.DeletePatient(ctx, b.ID))

	c := mustPatient(t, s, "C")
	assert.Greater(t, c.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestListPatientsSearch(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Pedro", "María Ana", "DANA", "100%_real"} {
		mustPatient(t, s, name)
	}

	all, err := s.ListPatients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	matched, err := s.ListPatients(ctx, "ana")
	require.NoError(t, err)
	var names []string
	for _, p := range matched {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Ana", "María Ana", "DANA"}, names)

	literal, err := s.ListPatients(ctx, "%_")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "100%_real", literal[0].Name)

	none, err := s.ListPatients(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListPatientsSearchFoldsNonASCII(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()

	for _, name := range []string{"ÁNGELA", "Ángela", "Angel"} {
		mustPatient(t, s, name)
	}

	for _, term := range []string{"ángela", "ÁNGELA", "Ángela"} {
		matched, err := s.ListPatients(ctx, term)
		require.NoError(t, err)
		var names []string
		for _, p := range matched {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"ÁNGELA", "Ángela"}, names, term)
	}

	matched, err := s.ListPatients(ctx, "ngel")
	require.NoError(t, err)
	assert.Len(t, matched, 3)
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p := mustPatient(t, s, "Juan")
	when := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.CreateAppointment(ctx, p.ID+1, models.AppointmentFields{DateTime: when, Reason: "checkup", Doctor: "Dr. Ruiz"})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	a, err := s.CreateAppointment(ctx, p.ID, models.AppointmentFields{DateTime: when, Reason: "checkup", Doctor: "Dr. Ruiz"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, a.PatientID)
	assert.Equal(t, models.DefaultAppointmentStatus, a.Status)

	list, err := s.ListAppointments(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
	assert.True(t, when.Equal(list[0].DateTime))

	updated, err := s.UpdateAppointment(ctx, a.ID, models.AppointmentFields{DateTime: when.Add(time.Hour), Reason: "follow-up", Doctor: "Dr. Ruiz", Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, p.ID, updated.PatientID)

	reset, err := s.UpdateAppointment(ctx, a.ID, models.AppointmentFields{DateTime: when, Reason: "r", Doctor: "d"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppointmentStatus, reset.Status)

	require.NoError(t, s.DeleteAppointment(ctx, a.ID))
	assert.ErrorIs(t, s.DeleteAppointment(ctx, a.ID), ErrAppointmentNotFound)
	_, err = s.GetAppointment(ctx, a.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = s.UpdateAppointment(ctx, a.ID, models.AppointmentFields{Reason: "r"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListChildrenPerPatientInInsertionOrder(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p1 := mustPatient(t, s, "One")
	p2 := mustPatient(t, s, "Two")

	for _, text := range []string{"first", "second", "third"} {
		_, err := s.CreateNote(ctx, p1.ID, models.MedicalNoteFields{Text: text})
		require.NoError(t, err)
	}
	_, err := s.CreateNote(ctx, p2.ID, models.MedicalNoteFields{Text: "other"})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "first", notes[0].Text)
	assert.Equal(t, "third", notes[2].Text)

	empty, err := s.ListNotes(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNoteTimestampIsFixedOnCreate(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p := mustPatient(t, s, "Juan")

	n, err := s.CreateNote(ctx, p.ID, models.MedicalNoteFields{Text: "initial"})
	require.NoError(t, err)
	assert.True(t, testNow.Equal(n.CreatedAt))

	s.now = func() time.Time { return testNow.Add(48 * time.Hour) }
	updated, err := s.UpdateNote(ctx, n.ID, models.MedicalNoteFields{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	got, err := s.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, testNow.Equal(got.CreatedAt))
	assert.Equal(t, p.ID, got.PatientID)

	_, err = s.CreateNote(ctx, 404, models.MedicalNoteFields{Text: "x"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	require.NoError(t, s.DeleteNote(ctx, n.ID))
	_, err = s.GetNote(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestVitalSigns(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p := mustPatient(t, s, "Juan")
	weight, hr := 71.5, 64

	v, err := s.CreateVitalSign(ctx, p.ID, models.VitalSignFields{Weight: &weight, HeartRate: &hr})
	require.NoError(t, err)
	assert.True(t, testNow.Equal(v.RecordedAt))

	got, err := s.GetVitalSign(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 71.5, *got.Weight, 0.001)
	assert.Nil(t, got.Systolic)

	sys, dia := 120, 80
	updated, err := s.UpdateVitalSign(ctx, v.ID, models.VitalSignFields{Systolic: &sys, Diastolic: &dia})
	require.NoError(t, err)
	assert.Nil(t, updated.Weight)
	assert.Equal(t, 120, *updated.Systolic)

	list, err := s.ListVitalSigns(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.CreateVitalSign(ctx, p.ID+5, models.VitalSignFields{})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	require.NoError(t, s.DeleteVitalSign(ctx, v.ID))
	assert.ErrorIs(t, s.DeleteVitalSign(ctx, v.ID), ErrVitalSignNotFound)
}

func TestPhotos(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p := mustPatient(t, s, "Juan")

	ph, err := s.CreatePhoto(ctx, p.ID, models.PhotoFields{URL: "https://img/1.jpg", Caption: strPtr("front")})
	require.NoError(t, err)
	assert.True(t, testNow.Equal(ph.TakenAt))

	updated, err := s.UpdatePhoto(ctx, ph.ID, models.PhotoFields{URL: "https://img/2.jpg"})
	require.NoError(t, err)
	assert.Nil(t, updated.Caption)

	got, err := s.GetPhoto(ctx, ph.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://img/2.jpg", got.URL)

	list, err := s.ListPhotos(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.CreatePhoto(ctx, 77, models.PhotoFields{URL: "u"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	require.NoError(t, s.DeletePhoto(ctx, ph.ID))
	_, err = s.GetPhoto(ctx, ph.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestDeletePatientCascades(t *testing.T) {
	s := newRecordStore(t)
	ctx := context.Background()
	p := mustPatient(t, s, "Juan")
	keep := mustPatient(t, s, "Ana")

	appt, err := s.CreateAppointment(ctx, p.ID, models.AppointmentFields{DateTime: testNow, Reason: "r", Doctor: "d"})
	require.NoError(t, err)
	note, err := s.CreateNote(ctx, p.ID, models.MedicalNoteFields{Text: "t"})
	require.NoError(t, err)
	vital, err := s.CreateVitalSign(ctx, p.ID, models.VitalSignFields{})
	require.NoError(t, err)
	photo, err := s.CreatePhoto(ctx, p.ID, models.PhotoFields{URL: "u"})
	require.NoError(t, err)
	other, err := s.CreateNote(ctx, keep.ID, models.MedicalNoteFields{Text: "kept"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePatient(ctx, p.ID))

	_, err = s.GetAppointment(ctx, appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = s.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	_, err = s.GetVitalSign(ctx, vital.ID)
	assert.ErrorIs(t, err, ErrVitalSignNotFound)
	_, err = s.GetPhoto(ctx, photo.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)

	_, err = s.GetNote(ctx, other.ID)
	assert.NoError(t, err)
}

func TestNotFoundErrorMatching(t *testing.T) {
	err := error(&NotFoundError{Resource: "patient"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.NotErrorIs(t, err, ErrPhotoNotFound)
	assert.Equal(t, "patient not found", err.Error())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "a!%b!_c!!", escapeLike("a%b_c!"))
}
