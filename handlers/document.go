package handlers

import (
	"net/http"

	"suitpax/models"
	"suitpax/services/document"
	"suitpax/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler serves the document extraction endpoint.
type DocumentHandler struct {
	Extractor document.DocumentExtractor
}

func NewDocumentHandler(extractor document.DocumentExtractor) *DocumentHandler {
	return &DocumentHandler{Extractor: extractor}
}

// ExtractRequest is the payload for POST /api/documents/extract.
type ExtractRequest struct {
	FileName string `json:"fileName" binding:"required"`
	Plan     string `json:"plan,omitempty"`
}

// ExtractHandler handles POST /api/documents/extract. Document processing is
// a paid feature, so free-tier requests get an upgrade message instead.
func (h *DocumentHandler) ExtractHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid document extract request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "fileName is required",
			"Please attach a document so I can process it.")
		return
	}

	plan := models.ParsePlanTier(req.Plan)
	if !plan.IsPro() {
		utils.JSONError(c, http.StatusForbidden, "Document processing requires a Pro plan",
			"Document processing is a Pro feature. Upgrade to Suitpax AI Pro to extract receipts, invoices and itineraries automatically.")
		return
	}

	extraction, err := h.Extractor.Extract(req.FileName)
	if err != nil {
		logger.Error("Document extraction failed", zap.String("fileName", req.FileName), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Extraction failed",
			"I apologize, but I couldn't process that document. Please try again.")
		return
	}

	c.JSON(http.StatusOK, extraction)
}
