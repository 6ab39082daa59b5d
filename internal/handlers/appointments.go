package handlers

import (
	"github.com/gin-gonic/gin"

	"medapp-server/internal/models"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Records *store.RecordStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(records *store.RecordStore) *AppointmentHandler {
	return &AppointmentHandler{Records: records}
}

// AppointmentRequest represents the request body for creating or replacing an appointment.
// DateTime is ISO 8601; values without a zone are UTC.
type AppointmentRequest struct {
	DateTime string `json:"datetime" binding:"required,timestamp"`
	Reason   string `json:"reason" binding:"required"`
	Doctor   string `json:"doctor" binding:"required"`
	Status   string `json:"status"`
}

// fields assumes the request passed binding, so DateTime parses.
func (r AppointmentRequest) fields() models.AppointmentFields {
	at, _ := utils.ParseTimestamp(r.DateTime)
	return models.AppointmentFields{
		DateTime: at,
		Reason:   r.Reason,
		Doctor:   r.Doctor,
		Status:   r.Status,
	}
}

// ListAppointments handles GET /patients/:id/appointments.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointments, err := h.Records.ListAppointments(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, appointments)
}

// CreateAppointment handles POST /patients/:id/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Records.CreateAppointment(c.Request.Context(), patientID, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, appointment)
}

// GetAppointment handles GET /appointments/:id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.Records.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, appointment)
}

// UpdateAppointment handles PUT /appointments/:id.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Records.UpdateAppointment(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, appointment)
}

// DeleteAppointment handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Records.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, utils.OK)
}
