package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"suitpax/models"
	"suitpax/services/document"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDocumentHandler(document.NewStubExtractor())
	r.POST("/api/documents/extract", h.ExtractHandler)
	return r
}

func postExtract(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/documents/extract", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestExtractRequiresProPlan(t *testing.T) {
	r := newDocumentRouter()

	w := postExtract(t, r, `{"fileName":"taxi-receipt.pdf","plan":"free"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Pro")
}

func TestExtractReceiptForProUser(t *testing.T) {
	r := newDocumentRouter()

	w := postExtract(t, r, `{"fileName":"taxi-receipt.pdf","plan":"starter"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.DocumentExtraction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, models.DocumentReceipt, got.Type)
	assert.Equal(t, "taxi-receipt.pdf", got.FileName)
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.Fields)
	assert.GreaterOrEqual(t, got.Confidence, 0.7)
	assert.LessOrEqual(t, got.Confidence, 1.0)
}

func TestExtractMissingFileName(t *testing.T) {
	r := newDocumentRouter()

	w := postExtract(t, r, `{"plan":"business"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractClassifiesByFileName(t *testing.T) {
	r := newDocumentRouter()

	tests := []struct {
		fileName string
		want     models.DocumentType
	}{
		{"march-invoice.pdf", models.DocumentInvoice},
		{"flight-itinerary.pdf", models.DocumentItinerary},
		{"hotel-booking.png", models.DocumentItinerary},
		{"picture.jpg", models.DocumentOther},
	}

	for _, tt := range tests {
		body, _ := json.Marshal(map[string]string{"fileName": tt.fileName, "plan": "business"})
		w := postExtract(t, r, string(body))
		require.Equal(t, http.StatusOK, w.Code, tt.fileName)

		var got models.DocumentExtraction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, tt.want, got.Type, tt.fileName)
	}
}
