package handlers

import (
	"github.com/gin-gonic/gin"

	"medapp-server/internal/models"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// VitalSignHandler handles vital sign requests.
type VitalSignHandler struct {
	Records *store.RecordStore
}

// NewVitalSignHandler creates a new VitalSignHandler.
func NewVitalSignHandler(records *store.RecordStore) *VitalSignHandler {
	return &VitalSignHandler{Records: records}
}

// VitalSignRequest carries optional measurements; absent ones are stored as null.
type VitalSignRequest struct {
	Weight    *float64 `json:"weight" binding:"omitempty,gt=0"`
	Systolic  *int     `json:"systolic" binding:"omitempty,gt=0"`
	Diastolic *int     `json:"diastolic" binding:"omitempty,gt=0"`
	HeartRate *int     `json:"heart_rate" binding:"omitempty,gt=0"`
}

func (r VitalSignRequest) fields() models.VitalSignFields {
	return models.VitalSignFields{
		Weight:    r.Weight,
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		HeartRate: r.HeartRate,
	}
}

// ListVitalSigns handles GET /patients/:id/vitals.
func (h *VitalSignHandler) ListVitalSigns(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	vitals, err := h.Records.ListVitalSigns(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, vitals)
}

// CreateVitalSign handles POST /patients/:id/vitals.
func (h *VitalSignHandler) CreateVitalSign(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req VitalSignRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	vital, err := h.Records.CreateVitalSign(c.Request.Context(), patientID, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, vital)
}

// GetVitalSign handles GET /vitals/:id.
func (h *VitalSignHandler) GetVitalSign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vital, err := h.Records.GetVitalSign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, vital)
}

// UpdateVitalSign handles PUT /vitals/:id.
func (h *VitalSignHandler) UpdateVitalSign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req VitalSignRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	vital, err := h.Records.UpdateVitalSign(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, vital)
}

// DeleteVitalSign handles DELETE /vitals/:id.
func (h *VitalSignHandler) DeleteVitalSign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Records.DeleteVitalSign(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, utils.OK)
}
