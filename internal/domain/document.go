package domain

import "time"

// DocumentSourceType identifies how a document entered the system.
type DocumentSourceType string

const (
	DocumentSourcePDF  DocumentSourceType = "pdf"
	DocumentSourceText DocumentSourceType = "text_input"
)

// DocumentStatus tracks whether a document's text has been extracted.
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusCompleted DocumentStatus = "completed"
	DocumentStatusFailed    DocumentStatus = "failed"
)

// IsValidDocumentStatus reports whether s is a known document status.
func IsValidDocumentStatus(s string) bool {
	switch DocumentStatus(s) {
	case DocumentStatusPending, DocumentStatusCompleted, DocumentStatusFailed:
		return true
	}
	return false
}

// MaxPDFSizeBytes caps uploaded PDF files at 10 MB.
const MaxPDFSizeBytes = 10 * 1024 * 1024

// Document is an uploaded PDF or a pasted text body owned by a user.
// PDF documents carry a FilePath; text documents carry ContentText.
type Document struct {
	ID          string
	Title       string
	SourceType  DocumentSourceType
	FilePath    string
	FileSize    int64
	ContentText string
	Status      DocumentStatus
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the document
func (d *Document) Validate() error {
	if d.Title == "" {
		return NewInvalidInputError("title is required")
	}
	switch d.SourceType {
	case DocumentSourcePDF:
		if d.FilePath == "" {
			return NewInvalidInputError("file path is required for pdf documents")
		}
	case DocumentSourceText:
		if d.ContentText == "" {
			return NewInvalidInputError("content text is required for text documents")
		}
	default:
		return NewInvalidInputError("unsupported document source type")
	}
	return nil
}
