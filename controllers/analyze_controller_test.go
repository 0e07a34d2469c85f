package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saleslens/backend/config"
	"saleslens/backend/models"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{CurrencyGlyph: "₹"}
	r := gin.New()
	r.POST("/api/data/upload-analyze", UploadAnalyze(cfg))
	r.POST("/api/data/normalize", NormalizeTable(cfg))
	return r
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadAnalyzeSingleFile(t *testing.T) {
	r := testRouter()
	body, contentType := multipartBody(t, "file", map[string][]byte{
		"sales.csv": []byte("Item,Amount\nWidget,\"1,200\"\nGadget,₹500/-\n"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/data/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1700.0, resp.Metrics.TotalRevenue)
	assert.Equal(t, 2, resp.Metrics.TotalOrders)
	assert.Equal(t, 2, resp.Metrics.UniqueProducts)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "amount_column", resp.Files[0].AmountSource)
	assert.Equal(t, "item", resp.Files[0].DetectedRoles["product"])
	assert.False(t, resp.Files[0].LowConfidence)
}

func TestUploadAnalyzeMergesMultipleFiles(t *testing.T) {
	r := testRouter()
	body, contentType := multipartBody(t, "files", map[string][]byte{
		"jan.csv": []byte("Item,Amount\nWidget,10\nGadget,20\n"),
		"feb.csv": []byte("Product,Qty,Rate\nWidget,2,10\nBolt,3,5\nNut,1,2\n"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/data/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 5, resp.Metrics.TotalOrders)
	assert.Equal(t, 67.0, resp.Metrics.TotalRevenue)
	assert.Len(t, resp.Files, 2)
}

func TestUploadAnalyzeMissingFile(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/data/upload-analyze", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAnalyzeUnsupportedType(t *testing.T) {
	r := testRouter()
	body, contentType := multipartBody(t, "file", map[string][]byte{
		"notes.txt": []byte("hello"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/data/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizeEndpoint(t *testing.T) {
	r := testRouter()
	body, contentType := multipartBody(t, "file", map[string][]byte{
		"sales.csv": []byte("Item,Qty,Rate\nWidget,2,10\nGadget,3,20\n"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/data/normalize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.NormalizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "quantity_rate", resp.Meta.AmountSource)
	assert.Equal(t, []string{"product", "amount", "quantity"}, resp.Columns)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Widget", resp.Records[0]["product"])
	assert.Equal(t, "20", resp.Records[0]["amount"])
	assert.Equal(t, "60", resp.Records[1]["amount"])
}
