package export

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/category"
	"taskboard/internal/domain"
)

const formatVersion = "1.0"

var ErrUnsupportedFormat = errors.New("unsupported export format")

type CategoryExport struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Categories []domain.Category `json:"categories"`
}

// CategoryReader is the read side of the category service.
type CategoryReader interface {
	Categories(ctx context.Context) (category.ReadResult, error)
}

// CategoryWriter is the write side of the category service.
type CategoryWriter interface {
	Save(ctx context.Context, cats []domain.Category) error
}
