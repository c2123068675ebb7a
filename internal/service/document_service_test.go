package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"
)

func TestUploadPDF(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	store := new(MockFileStore)
	svc := NewDocumentService(docRepo, store)

	store.On("Save", "lecture.pdf", mock.Anything).Return("uploads/documents/abc.pdf", nil)
	docRepo.On("CreateDocument", mock.Anything, mock.MatchedBy(func(d *models.Document) bool {
		return d.SourceType == "pdf" && d.Status == "pending" && d.FilePath.String == "uploads/documents/abc.pdf"
	})).Return(nil)

	doc, err := svc.UploadPDF(context.Background(), "01HUSER", "Week 3 Lecture", "lecture.pdf", 1024, strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Week 3 Lecture", doc.Title)
	assert.Equal(t, domain.DocumentStatusPending, doc.Status)
	assert.NotEmpty(t, doc.ID)
}

func TestUploadPDF_TooLarge(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockFileStore))

	_, err := svc.UploadPDF(context.Background(), "01HUSER", "Huge", "huge.pdf",
		domain.MaxPDFSizeBytes+1, strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestUploadPDF_WrongExtension(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockFileStore))

	_, err := svc.UploadPDF(context.Background(), "01HUSER", "Doc", "notes.docx", 100, strings.NewReader(""))
	assert.Error(t, err)
}

func TestUploadPDF_DBFailureRemovesFile(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	store := new(MockFileStore)
	svc := NewDocumentService(docRepo, store)

	store.On("Save", "lecture.pdf", mock.Anything).Return("uploads/documents/abc.pdf", nil)
	docRepo.On("CreateDocument", mock.Anything, mock.Anything).Return(errors.New("db down"))
	store.On("Remove", "uploads/documents/abc.pdf").Return(nil)

	_, err := svc.UploadPDF(context.Background(), "01HUSER", "Doc", "lecture.pdf", 100, strings.NewReader("%PDF"))
	require.Error(t, err)
	store.AssertExpectations(t)
}

func TestCreateTextDocument(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	svc := NewDocumentService(docRepo, new(MockFileStore))

	docRepo.On("CreateDocument", mock.Anything, mock.MatchedBy(func(d *models.Document) bool {
		return d.SourceType == "text_input" && d.Status == "completed"
	})).Return(nil)

	doc, err := svc.CreateTextDocument(context.Background(), "01HUSER", "", "Some pasted study notes.")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Document", doc.Title)
	assert.Equal(t, domain.DocumentStatusCompleted, doc.Status)
}

func TestCreateTextDocument_Empty(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockFileStore))

	_, err := svc.CreateTextDocument(context.Background(), "01HUSER", "Notes", "   ")
	assert.Error(t, err)
}

func TestDeleteDocument_RemovesFile(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	store := new(MockFileStore)
	svc := NewDocumentService(docRepo, store)

	stored := models.DocumentFromDomain(&domain.Document{
		ID:         "01HDOC",
		Title:      "Doc",
		SourceType: domain.DocumentSourcePDF,
		FilePath:   "uploads/documents/abc.pdf",
		Status:     domain.DocumentStatusPending,
		OwnerID:    "01HUSER",
	})
	docRepo.On("GetDocumentByID", mock.Anything, "01HDOC").Return(stored, nil)
	docRepo.On("DeleteDocument", mock.Anything, "01HDOC").Return(nil)
	store.On("Remove", "uploads/documents/abc.pdf").Return(nil)

	err := svc.DeleteDocument(context.Background(), "01HDOC", "01HUSER")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGetDocument_OwnerScoped(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	svc := NewDocumentService(docRepo, new(MockFileStore))

	stored := models.DocumentFromDomain(&domain.Document{
		ID:         "01HDOC",
		Title:      "Doc",
		SourceType: domain.DocumentSourcePDF,
		FilePath:   "uploads/documents/abc.pdf",
		Status:     domain.DocumentStatusPending,
		OwnerID:    "01HUSER",
	})
	docRepo.On("GetDocumentByID", mock.Anything, "01HDOC").Return(stored, nil)

	_, err := svc.GetDocument(context.Background(), "01HDOC", "01HOTHER")
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeForbidden, de.Code)
}

func TestListDocuments_Paginated(t *testing.T) {
	docRepo := new(MockDocumentRepository)
	svc := NewDocumentService(docRepo, new(MockFileStore))

	stored := []models.Document{*models.DocumentFromDomain(&domain.Document{
		ID:         "01HDOC",
		Title:      "Doc",
		SourceType: domain.DocumentSourcePDF,
		FilePath:   "uploads/documents/abc.pdf",
		Status:     domain.DocumentStatusCompleted,
		OwnerID:    "01HUSER",
	})}
	docRepo.On("CountDocumentsByOwner", mock.Anything, "01HUSER", "completed").Return(11, nil)
	docRepo.On("ListDocumentsByOwner", mock.Anything, "01HUSER", "completed", 10, 10).Return(stored, nil)

	docs, total, err := svc.ListDocuments(context.Background(), "01HUSER",
		DocumentListParams{Page: 2, Limit: 10, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, docs, 1)
	assert.Equal(t, "01HDOC", docs[0].ID)
}

func TestListDocuments_InvalidStatus(t *testing.T) {
	svc := NewDocumentService(new(MockDocumentRepository), new(MockFileStore))

	_, _, err := svc.ListDocuments(context.Background(), "01HUSER",
		DocumentListParams{Status: "archived"})
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeInvalidInput, de.Code)
}
