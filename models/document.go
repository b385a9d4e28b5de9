package models

// DocumentType classifies an uploaded travel document.
type DocumentType string

const (
	DocumentReceipt   DocumentType = "receipt"
	DocumentInvoice   DocumentType = "invoice"
	DocumentItinerary DocumentType = "itinerary"
	DocumentOther     DocumentType = "other"
)

// DocumentExtraction is the structured result of processing an uploaded document.
type DocumentExtraction struct {
	ID         string            `json:"id"`
	FileName   string            `json:"fileName"`
	Type       DocumentType      `json:"type"`
	Fields     map[string]string `json:"fields"`     // extracted key/value pairs
	Confidence float64           `json:"confidence"` // 0.0 - 1.0
}
