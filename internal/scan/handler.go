package scan

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
	"github.com/Erictomm2002/Menu-Scanner/internal/middleware"
	"github.com/Erictomm2002/Menu-Scanner/internal/session"
)

const (
	// POST /api/extract takes a single image.
	maxSingleImageBytes = 10 << 20
	// POST /api/menus takes a batch with a per-file cap.
	maxBatchImageBytes = 20 << 20
	maxBatchFiles      = 5
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StartSession issues a fresh session and its bearer token.
func (h *Handler) StartSession(c *gin.Context) {
	sessionID, token, err := h.service.StartSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"token":      token,
		"step":       session.StepUpload,
	})
}

// GetSession returns the persisted step and document for resumption.
func (h *Handler) GetSession(c *gin.Context) {
	state, err := h.service.GetState(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.stateError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetSession discards the session state and returns the flow to upload.
func (h *Handler) ResetSession(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": session.StepUpload})
}

// Extract runs one stateless extraction for a single uploaded image and
// returns the raw pre-reconciliation batch.
func (h *Handler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không tìm thấy file ảnh"})
		return
	}
	defer file.Close()

	img, ok := readImage(c, file, header, maxSingleImageBytes)
	if !ok {
		return
	}

	batch, err := h.service.ExtractSingle(c.Request.Context(), img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi xử lý ảnh menu. Vui lòng thử lại với ảnh rõ hơn."})
		return
	}

	c.JSON(http.StatusOK, batch)
}

// CreateMenu extracts up to five images sequentially, reconciles them and
// commits the document to the session. All-or-nothing: any per-image
// failure discards the whole batch.
func (h *Handler) CreateMenu(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không tìm thấy file ảnh"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không tìm thấy file ảnh"})
		return
	}
	if len(files) > maxBatchFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tối đa 5 ảnh mỗi lần tải lên"})
		return
	}

	images := make([]UploadedImage, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không tìm thấy file ảnh"})
			return
		}

		img, ok := readImage(c, file, header, maxBatchImageBytes)
		file.Close()
		if !ok {
			return
		}
		images = append(images, img)
	}

	doc, err := h.service.CreateMenu(c.Request.Context(), middleware.SessionID(c), images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// readImage validates MIME type and size, then buffers the upload.
func readImage(c *gin.Context, file multipart.File, header *multipart.FileHeader, maxBytes int64) (UploadedImage, bool) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File không phải là ảnh"})
		return UploadedImage{}, false
	}

	if header.Size > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ảnh quá lớn. Vui lòng chọn ảnh nhỏ hơn"})
		return UploadedImage{}, false
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil || int64(len(data)) > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ảnh quá lớn. Vui lòng chọn ảnh nhỏ hơn"})
		return UploadedImage{}, false
	}

	return UploadedImage{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, true
}

// UpdateStep moves the session between edit and export.
func (h *Handler) UpdateStep(c *gin.Context) {
	var req struct {
		Step session.Step `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	switch req.Step {
	case session.StepUpload, session.StepEdit, session.StepExport:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step"})
		return
	}

	state, err := h.service.SetStep(c.Request.Context(), middleware.SessionID(c), req.Step)
	if err != nil {
		h.stateError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) RenameRestaurant(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	doc, err := h.service.RenameRestaurant(c.Request.Context(), middleware.SessionID(c), req.Name)
	h.respond(c, doc, err)
}

func (h *Handler) RenameCategory(c *gin.Context) {
	var req struct {
		CategoryName string `json:"categoryName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	doc, err := h.service.RenameCategory(
		c.Request.Context(), middleware.SessionID(c), c.Param("categoryID"), req.CategoryName)
	h.respond(c, doc, err)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	field, err := menu.ParseItemField(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.UpdateItemField(
		c.Request.Context(), middleware.SessionID(c),
		c.Param("categoryID"), c.Param("itemID"), field, req.Value)
	h.respond(c, doc, err)
}

func (h *Handler) AddItem(c *gin.Context) {
	doc, err := h.service.AddItem(c.Request.Context(), middleware.SessionID(c), c.Param("categoryID"))
	h.respond(c, doc, err)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	doc, err := h.service.DeleteItem(
		c.Request.Context(), middleware.SessionID(c), c.Param("categoryID"), c.Param("itemID"))
	h.respond(c, doc, err)
}

func (h *Handler) AddCategory(c *gin.Context) {
	doc, err := h.service.AddCategory(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, doc, err)
}

// DeleteCategory removes a category and everything in it. The UI asks the
// user first; the API demands the confirm flag so the prompt cannot be
// skipped by accident.
func (h *Handler) DeleteCategory(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: pass confirm=true"})
		return
	}

	doc, err := h.service.DeleteCategory(c.Request.Context(), middleware.SessionID(c), c.Param("categoryID"))
	h.respond(c, doc, err)
}

func (h *Handler) MoveItem(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	direction, err := menu.ParseMoveDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.MoveItem(
		c.Request.Context(), middleware.SessionID(c),
		c.Param("categoryID"), c.Param("itemID"), direction)
	h.respond(c, doc, err)
}

func (h *Handler) respond(c *gin.Context, doc *menu.MenuData, err error) {
	if err != nil {
		h.stateError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) stateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, ErrNoMenu),
		errors.Is(err, menu.ErrCategoryNotFound), errors.Is(err, menu.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
