package dto

import (
	"time"

	"quizforge/internal/domain"
)

// CreateTextDocumentRequest is the request body for a pasted text document
type CreateTextDocumentRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// DocumentResponse represents a document in the API response
// @Description Document metadata
type DocumentResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	SourceType string    `json:"source_type"`
	FileSize   int64     `json:"file_size,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Pagination describes one page of a listing
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// DocumentListResponse wraps one page of documents
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}

// NewPagination computes page counts for a listing.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// NewDocumentResponse maps a domain document to its API representation.
// Stored file paths and extracted text stay server-side.
func NewDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		SourceType: string(doc.SourceType),
		FileSize:   doc.FileSize,
		Status:     string(doc.Status),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
