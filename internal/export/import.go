package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"taskboard/internal/domain"
)

type Importer struct {
	categories CategoryWriter
}

func NewImporter(categories CategoryWriter) *Importer {
	return &Importer{categories: categories}
}

// Import reads either a CategoryExport document or a bare JSON array of
// categories and replaces the stored list with it.
func (i *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	cats, err := decodeCategories(r)
	if err != nil {
		return 0, err
	}

	if err := i.categories.Save(ctx, cats); err != nil {
		return 0, fmt.Errorf("failed to save imported categories: %w", err)
	}

	return len(cats), nil
}

func decodeCategories(r io.Reader) ([]domain.Category, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedFormat)
	}

	switch trimmed[0] {
	case '[':
		var cats []domain.Category
		if err := json.Unmarshal(trimmed, &cats); err != nil {
			return nil, fmt.Errorf("failed to decode category list: %w", err)
		}
		return cats, nil

	case '{':
		var export CategoryExport
		if err := json.Unmarshal(trimmed, &export); err != nil {
			return nil, fmt.Errorf("failed to decode category export: %w", err)
		}
		if export.Categories == nil {
			return nil, fmt.Errorf("no categories in export")
		}
		return export.Categories, nil

	default:
		return nil, fmt.Errorf("%w: expected a JSON object or array", ErrUnsupportedFormat)
	}
}
