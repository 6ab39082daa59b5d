package handlers

import (
	"github.com/gin-gonic/gin"

	"medapp-server/internal/models"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// NoteHandler handles medical note requests.
type NoteHandler struct {
	Records *store.RecordStore
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(records *store.RecordStore) *NoteHandler {
	return &NoteHandler{Records: records}
}

// NoteRequest is the body of POST and PUT for notes.
type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r NoteRequest) fields() models.MedicalNoteFields {
	return models.MedicalNoteFields{Text: r.Text}
}

// ListNotes handles GET /patients/:id/notes.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	notes, err := h.Records.ListNotes(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, notes)
}

// CreateNote handles POST /patients/:id/notes.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req NoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	note, err := h.Records.CreateNote(c.Request.Context(), patientID, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, note)
}

// GetNote handles GET /notes/:id.
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	note, err := h.Records.GetNote(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, note)
}

// UpdateNote handles PUT /notes/:id.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req NoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	note, err := h.Records.UpdateNote(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, note)
}

// DeleteNote handles DELETE /notes/:id.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Records.DeleteNote(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, utils.OK)
}
