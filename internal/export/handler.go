package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves the two export endpoints. Exports are read-only with
// respect to the document: the request body is the authoritative input and
// session state is never touched.
type Handler struct {
	log *zap.Logger
	now func() time.Time
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log, now: time.Now}
}

// ExportMenu streams the full-menu XLSX for the posted document.
func (h *Handler) ExportMenu(c *gin.Context) {
	doc, ok := h.bindDocument(c)
	if !ok {
		return
	}

	payload, err := GenerateMenu(doc)
	if err != nil {
		h.log.Error("menu export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi xuất file Excel. Vui lòng thử lại."})
		return
	}

	h.stream(c, payload, MenuFilename(doc.RestaurantName, h.now()))
}

// ExportCategories streams the category-list XLSX.
func (h *Handler) ExportCategories(c *gin.Context) {
	doc, ok := h.bindDocument(c)
	if !ok {
		return
	}

	payload, err := GenerateCategories(doc)
	if err != nil {
		h.log.Error("category export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi xuất file Excel. Vui lòng thử lại."})
		return
	}

	h.stream(c, payload, CategoryFilename(doc.RestaurantName, h.now()))
}

// bindDocument decodes and validates the posted document. categories must
// be present, a list and non-empty.
func (h *Handler) bindDocument(c *gin.Context) (*menu.MenuData, bool) {
	var raw struct {
		RestaurantName string          `json:"restaurantName"`
		Categories     json.RawMessage `json:"categories"`
	}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu menu không hợp lệ"})
		return nil, false
	}

	var categories []menu.MenuCategory
	if len(raw.Categories) == 0 || json.Unmarshal(raw.Categories, &categories) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu menu không hợp lệ"})
		return nil, false
	}

	if len(categories) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu không có dữ liệu"})
		return nil, false
	}

	return &menu.MenuData{
		RestaurantName: raw.RestaurantName,
		Categories:     categories,
	}, true
}

func (h *Handler) stream(c *gin.Context, payload []byte, filename string) {
	h.log.Info("exporting excel", zap.String("filename", filename), zap.Int("bytes", len(payload)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, payload)
}
