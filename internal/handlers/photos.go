package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medapp-server/internal/models"
	"medapp-server/internal/storage"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// maxPhotoSize bounds multipart uploads.
const maxPhotoSize = 10 << 20

// PhotoHandler handles patient photo requests.
type PhotoHandler struct {
	Records *store.RecordStore
	Objects storage.ObjectStore // nil when uploads are disabled
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(records *store.RecordStore, objects storage.ObjectStore) *PhotoHandler {
	return &PhotoHandler{Records: records, Objects: objects}
}

// PhotoRequest is the body of POST and PUT for photos linking an existing URL.
type PhotoRequest struct {
	URL     string  `json:"url" binding:"required"`
	Caption *string `json:"caption"`
}

func (r PhotoRequest) fields() models.PhotoFields {
	return models.PhotoFields{URL: r.URL, Caption: r.Caption}
}

// ListPhotos handles GET /patients/:id/photos.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	photos, err := h.Records.ListPhotos(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, photos)
}

// CreatePhoto handles POST /patients/:id/photos.
func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PhotoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	photo, err := h.Records.CreatePhoto(c.Request.Context(), patientID, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, photo)
}

// UploadPhoto stores the multipart "file" field in object storage and records
// its URL. An optional "caption" form field is kept with it.
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	if h.Objects == nil {
		utils.ServiceUnavailable(c, "Photo uploads are not configured")
		return
	}
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// Check first so no object is stored for a missing patient.
	if _, err := h.Records.GetPatient(ctx, patientID); err != nil {
		respondError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ValidationFailed(c, map[string]string{"file": "field required"})
		return
	}
	if header.Size > maxPhotoSize {
		utils.ValidationFailed(c, map[string]string{"file": fmt.Sprintf("must be at most %d bytes", maxPhotoSize)})
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.ValidationFailed(c, map[string]string{"file": "must be an image"})
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequest(c, "Error reading uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	key := fmt.Sprintf("patients/%d/%s%s", patientID, uuid.New().String(), strings.ToLower(filepath.Ext(header.Filename)))
	url, err := h.Objects.Put(ctx, key, contentType, file, header.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	fields := models.PhotoFields{URL: url}
	if caption := c.PostForm("caption"); caption != "" {
		fields.Caption = &caption
	}
	photo, err := h.Records.CreatePhoto(ctx, patientID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, photo)
}

// GetPhoto handles GET /photos/:id.
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	photo, err := h.Records.GetPhoto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, photo)
}

// UpdatePhoto handles PUT /photos/:id.
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PhotoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	photo, err := h.Records.UpdatePhoto(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, photo)
}

// DeletePhoto handles DELETE /photos/:id.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Records.DeletePhoto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, utils.OK)
}
