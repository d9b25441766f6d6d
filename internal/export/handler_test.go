package export

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func setupExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(zap.NewNop())
	h.now = func() time.Time { return exportDay }

	r.POST("/api/export", h.ExportMenu)
	r.POST("/api/export/categories", h.ExportCategories)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validDoc = `{
	"restaurantName": "Pho 24",
	"categories": [
		{"id": "ca-phe", "categoryName": "Cà phê", "items": [{"id": "item_1", "name": "Đen", "price": "20000"}]}
	]
}`

func TestExportMenu_Success(t *testing.T) {
	r := setupExportRouter()

	w := postJSON(r, "/api/export", validDoc)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Pho_24_2025-03-14.xlsx"`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Menu")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Đen", rows[1][0])
}

func TestExportCategories_Success(t *testing.T) {
	r := setupExportRouter()

	w := postJSON(r, "/api/export/categories", validDoc)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Pho_24_categories_2025-03-14.xlsx"`, w.Header().Get("Content-Disposition"))
}

func TestExport_RejectsMissingCategories(t *testing.T) {
	r := setupExportRouter()

	for _, body := range []string{
		`{}`,
		`{"restaurantName": "X"}`,
		`{"categories": "not-a-list"}`,
		`{"categories": []}`,
		`not json`,
	} {
		w := postJSON(r, "/api/export", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		w = postJSON(r, "/api/export/categories", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}
