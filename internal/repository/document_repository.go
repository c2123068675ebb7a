package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quizforge/internal/repository/models"
)

// DocumentRepository defines the interface for document persistence.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocumentByID(ctx context.Context, docID string) (*models.Document, error)
	UpdateDocumentStatus(ctx context.Context, docID string, status string) error
	UpdateDocumentContent(ctx context.Context, docID string, content string, status string) error
	DeleteDocument(ctx context.Context, docID string) error
	ListDocumentsByOwner(ctx context.Context, ownerID string, status string, limit, offset int) ([]models.Document, error)
	CountDocumentsByOwner(ctx context.Context, ownerID string, status string) (int, error)
}

type sqlxDocumentRepository struct {
	db *sqlx.DB
}

func NewSQLXDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &sqlxDocumentRepository{db: db}
}

func (r *sqlxDocumentRepository) CreateDocument(ctx context.Context, doc *models.Document) error {
	query := `INSERT INTO documents (id, title, source_type, file_path, file_size, content_text, status, owner_id, created_at, updated_at)
	          VALUES (:id, :title, :source_type, :file_path, :file_size, :content_text, :status, :owner_id, :created_at, :updated_at)`

	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, doc)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *sqlxDocumentRepository) GetDocumentByID(ctx context.Context, docID string) (*models.Document, error) {
	var doc models.Document
	query := `SELECT * FROM documents WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetDocumentByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &doc, map[string]interface{}{"id": docID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return &doc, nil
}

func (r *sqlxDocumentRepository) UpdateDocumentStatus(ctx context.Context, docID string, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE documents SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), docID)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	return nil
}

// UpdateDocumentContent stores extracted text alongside the resulting status.
func (r *sqlxDocumentRepository) UpdateDocumentContent(ctx context.Context, docID string, content string, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE documents SET content_text = $1, status = $2, updated_at = $3 WHERE id = $4`,
		content, status, time.Now(), docID)
	if err != nil {
		return fmt.Errorf("failed to update document content: %w", err)
	}
	return nil
}

func (r *sqlxDocumentRepository) DeleteDocument(ctx context.Context, docID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, docID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxDocumentRepository) ListDocumentsByOwner(ctx context.Context, ownerID string, status string, limit, offset int) ([]models.Document, error) {
	var docs []models.Document

	if status != "" {
		query := `SELECT * FROM documents WHERE owner_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		if err := r.db.SelectContext(ctx, &docs, query, ownerID, status, limit, offset); err != nil {
			return nil, fmt.Errorf("failed to list documents by owner: %w", err)
		}
		return docs, nil
	}

	query := `SELECT * FROM documents WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &docs, query, ownerID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list documents by owner: %w", err)
	}
	return docs, nil
}

func (r *sqlxDocumentRepository) CountDocumentsByOwner(ctx context.Context, ownerID string, status string) (int, error) {
	var total int

	if status != "" {
		query := `SELECT COUNT(*) FROM documents WHERE owner_id = $1 AND status = $2`
		if err := r.db.GetContext(ctx, &total, query, ownerID, status); err != nil {
			return 0, fmt.Errorf("failed to count documents by owner: %w", err)
		}
		return total, nil
	}

	query := `SELECT COUNT(*) FROM documents WHERE owner_id = $1`
	if err := r.db.GetContext(ctx, &total, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count documents by owner: %w", err)
	}
	return total, nil
}
