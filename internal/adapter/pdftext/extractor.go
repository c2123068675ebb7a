package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"golang.org/x/sync/singleflight"
)

// Extractor pulls plain text out of PDF files on disk. Concurrent requests
// for the same path share a single extraction.
type Extractor struct {
	group singleflight.Group
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText loads every page of the PDF at path and returns the
// concatenated page text separated by blank lines.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	v, err, _ := e.group.Do(path, func() (interface{}, error) {
		return e.extract(ctx, path)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (e *Extractor) extract(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat pdf: %w", err)
	}

	loader := documentloaders.NewPDF(f, info.Size())
	docs, err := loader.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to parse pdf: %w", err)
	}

	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		if text := strings.TrimSpace(doc.PageContent); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}
