package handlers

import (
	"github.com/gin-gonic/gin"

	"medapp-server/internal/models"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// PatientHandler handles patient related requests.
type PatientHandler struct {
	Records *store.RecordStore
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(records *store.RecordStore) *PatientHandler {
	return &PatientHandler{Records: records}
}

// PatientRequest is the body of POST and PUT /patients. PUT replaces every field.
type PatientRequest struct {
	Name         string  `json:"name" binding:"required"`
	BirthDate    *string `json:"birth_date"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	NotesSummary *string `json:"notes_summary"`
	PhotoURL     *string `json:"photo_url"`
}

func (r PatientRequest) fields() models.PatientFields {
	return models.PatientFields{
		Name:         r.Name,
		BirthDate:    r.BirthDate,
		Phone:        r.Phone,
		Email:        r.Email,
		NotesSummary: r.NotesSummary,
		PhotoURL:     r.PhotoURL,
	}
}

// ListPatients handles GET /patients with an optional ?search= name filter.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.Records.ListPatients(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patients)
}

// CreatePatient handles POST /patients.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Records.CreatePatient(c.Request.Context(), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patient)
}

// GetPatient handles GET /patients/:id.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	patient, err := h.Records.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patient)
}

// UpdatePatient handles PUT /patients/:id.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Records.UpdatePatient(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patient)
}

// DeletePatient removes the patient and everything recorded for it.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Records.DeletePatient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, utils.OK)
}
