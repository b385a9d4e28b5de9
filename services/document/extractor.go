package document

import (
	"math/rand"
	"path/filepath"
	"strings"

	"suitpax/models"

	"github.com/google/uuid"
)

// DocumentExtractor turns an uploaded travel document into structured data.
// The stub below returns fixed-shape mock data; a real OCR backend can be
// substituted without touching call sites.
type DocumentExtractor interface {
	Extract(fileName string) (*models.DocumentExtraction, error)
}

// StubExtractor is the demo implementation. It classifies documents by file
// name only and fabricates plausible field values.
type StubExtractor struct{}

func NewStubExtractor() *StubExtractor {
	return &StubExtractor{}
}

func (e *StubExtractor) Extract(fileName string) (*models.DocumentExtraction, error) {
	docType := classify(fileName)

	return &models.DocumentExtraction{
		ID:         "doc-" + uuid.NewString(),
		FileName:   fileName,
		Type:       docType,
		Fields:     mockFields(docType),
		Confidence: 0.7 + rand.Float64()*0.3,
	}, nil
}

func classify(fileName string) models.DocumentType {
	name := strings.ToLower(fileName)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	switch {
	case strings.Contains(base, "receipt"):
		return models.DocumentReceipt
	case strings.Contains(base, "invoice"):
		return models.DocumentInvoice
	case strings.Contains(base, "itinerary") || strings.Contains(base, "booking"):
		return models.DocumentItinerary
	default:
		return models.DocumentOther
	}
}

func mockFields(t models.DocumentType) map[string]string {
	switch t {
	case models.DocumentReceipt:
		return map[string]string{
			"merchant": "Madrid Airport Taxi",
			"amount":   "34.50",
			"currency": "EUR",
			"date":     "2025-03-14",
			"category": "Ground Transportation",
		}
	case models.DocumentInvoice:
		return map[string]string{
			"vendor":   "Hotel Ritz Madrid",
			"amount":   "450.00",
			"currency": "EUR",
			"date":     "2025-03-15",
			"category": "Accommodation",
		}
	case models.DocumentItinerary:
		return map[string]string{
			"carrier":   "British Airways",
			"flight":    "BA 456",
			"route":     "Madrid (MAD) - London Heathrow (LHR)",
			"departure": "08:30",
		}
	default:
		return map[string]string{
			"summary": "Unrecognized travel document",
		}
	}
}
