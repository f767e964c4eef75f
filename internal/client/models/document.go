package models

// DocumentStatus reflects the outcome of sending a document to the
// indexing workflow.
type DocumentStatus string

const (
	DocumentStatusIndexed DocumentStatus = "indexed"
	DocumentStatusError   DocumentStatus = "error"
)

// Document is one entry in a user's uploaded-document list.
type Document struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   string         `json:"type"` // MIME type
	Status DocumentStatus `json:"status"`
	Size   string         `json:"size,omitempty"` // human-readable, e.g. "1.24 MB"
}
