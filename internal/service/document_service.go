package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"
)

// FileStore persists uploaded files and removes them again.
type FileStore interface {
	Save(originalName string, content io.Reader) (string, error)
	Remove(path string) error
}

// DocumentListParams narrows and pages a document listing.
type DocumentListParams struct {
	Page   int
	Limit  int
	Status string
}

// DocumentService manages uploaded PDFs and pasted text documents.
type DocumentService interface {
	UploadPDF(ctx context.Context, ownerID, title, fileName string, size int64, content io.Reader) (*domain.Document, error)
	CreateTextDocument(ctx context.Context, ownerID, title, text string) (*domain.Document, error)
	GetDocument(ctx context.Context, docID, ownerID string) (*domain.Document, error)
	DeleteDocument(ctx context.Context, docID, ownerID string) error
	ListDocuments(ctx context.Context, ownerID string, params DocumentListParams) ([]domain.Document, int, error)
}

type documentService struct {
	docRepo repository.DocumentRepository
	store   FileStore
}

func NewDocumentService(docRepo repository.DocumentRepository, store FileStore) DocumentService {
	return &documentService{docRepo: docRepo, store: store}
}

// UploadPDF stores the file on disk and records the document as pending;
// text extraction is deferred until the document is first used.
func (s *documentService) UploadPDF(ctx context.Context, ownerID, title, fileName string, size int64, content io.Reader) (*domain.Document, error) {
	if size > domain.MaxPDFSizeBytes {
		return nil, domain.NewInvalidInputError("file exceeds the 10MB size limit")
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return nil, domain.NewInvalidInputError("only PDF files are supported")
	}
	if title == "" {
		title = fileName
	}

	path, err := s.store.Save(fileName, content)
	if err != nil {
		return nil, domain.NewInternalError("failed to store uploaded file", err)
	}

	doc := &domain.Document{
		ID:         util.NewULID(),
		Title:      title,
		SourceType: domain.DocumentSourcePDF,
		FilePath:   path,
		FileSize:   size,
		Status:     domain.DocumentStatusPending,
		OwnerID:    ownerID,
	}
	if err := doc.Validate(); err != nil {
		s.removeFile(path)
		return nil, err
	}

	if err := s.docRepo.CreateDocument(ctx, models.DocumentFromDomain(doc)); err != nil {
		s.removeFile(path)
		return nil, domain.NewInternalError("failed to save document", err)
	}
	return doc, nil
}

// CreateTextDocument records a pasted text body. It needs no extraction and
// is stored completed.
func (s *documentService) CreateTextDocument(ctx context.Context, ownerID, title, text string) (*domain.Document, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewInvalidInputError("text is required")
	}
	if len(text) > domain.MaxRawTextLength {
		return nil, domain.NewInvalidInputError("text exceeds the maximum length")
	}
	if title == "" {
		title = "Untitled Document"
	}

	doc := &domain.Document{
		ID:          util.NewULID(),
		Title:       title,
		SourceType:  domain.DocumentSourceText,
		ContentText: text,
		Status:      domain.DocumentStatusCompleted,
		OwnerID:     ownerID,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if err := s.docRepo.CreateDocument(ctx, models.DocumentFromDomain(doc)); err != nil {
		return nil, domain.NewInternalError("failed to save document", err)
	}
	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, docID, ownerID string) (*domain.Document, error) {
	model, err := s.docRepo.GetDocumentByID(ctx, docID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load document", err)
	}
	if model == nil {
		return nil, domain.NewDocumentNotFoundError(docID)
	}
	doc := model.ToDomain()
	if doc.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("Not authorized to access this document")
	}
	return doc, nil
}

// DeleteDocument removes the record and then the stored file. File removal
// is best effort; a leftover file does not fail the delete.
func (s *documentService) DeleteDocument(ctx context.Context, docID, ownerID string) error {
	doc, err := s.GetDocument(ctx, docID, ownerID)
	if err != nil {
		return err
	}
	if err := s.docRepo.DeleteDocument(ctx, docID); err != nil {
		return domain.NewInternalError("failed to delete document", err)
	}
	if doc.FilePath != "" {
		s.removeFile(doc.FilePath)
	}
	return nil
}

// ListDocuments returns one page of the owner's documents, newest first,
// along with the total count matching the filter.
func (s *documentService) ListDocuments(ctx context.Context, ownerID string, params DocumentListParams) ([]domain.Document, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}
	if params.Status != "" && !domain.IsValidDocumentStatus(params.Status) {
		return nil, 0, domain.NewInvalidInputError("invalid status filter")
	}
	offset := (params.Page - 1) * params.Limit

	total, err := s.docRepo.CountDocumentsByOwner(ctx, ownerID, params.Status)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to count documents", err)
	}

	modelsList, err := s.docRepo.ListDocumentsByOwner(ctx, ownerID, params.Status, params.Limit, offset)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list documents", err)
	}
	docs := make([]domain.Document, 0, len(modelsList))
	for i := range modelsList {
		docs = append(docs, *modelsList[i].ToDomain())
	}
	return docs, total, nil
}

func (s *documentService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		logger.Get().Warn("Failed to remove stored file",
			zap.String("path", path), zap.Error(err))
	}
}
