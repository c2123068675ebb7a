package models

import (
	"database/sql"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/util"
)

type Document struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	SourceType  string         `db:"source_type"`
	FilePath    sql.NullString `db:"file_path"`
	FileSize    int64          `db:"file_size"`
	ContentText sql.NullString `db:"content_text"`
	Status      string         `db:"status"`
	OwnerID     string         `db:"owner_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (d *Document) ToDomain() *domain.Document {
	return &domain.Document{
		ID:          d.ID,
		Title:       d.Title,
		SourceType:  domain.DocumentSourceType(d.SourceType),
		FilePath:    util.NullStringToString(d.FilePath),
		FileSize:    d.FileSize,
		ContentText: util.NullStringToString(d.ContentText),
		Status:      domain.DocumentStatus(d.Status),
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func DocumentFromDomain(d *domain.Document) *Document {
	return &Document{
		ID:          d.ID,
		Title:       d.Title,
		SourceType:  string(d.SourceType),
		FilePath:    util.StringToNullString(d.FilePath),
		FileSize:    d.FileSize,
		ContentText: util.StringToNullString(d.ContentText),
		Status:      string(d.Status),
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
