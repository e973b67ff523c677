package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type JSONExporter struct {
	categories CategoryReader
	now        func() time.Time
}

func NewJSONExporter(categories CategoryReader) *JSONExporter {
	return &JSONExporter{
		categories: categories,
		now:        time.Now,
	}
}

func (e *JSONExporter) Export(ctx context.Context) (*CategoryExport, error) {
	res, err := e.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return &CategoryExport{
		Version:    formatVersion,
		ExportedAt: e.now().UTC(),
		Categories: res.Categories,
	}, nil
}

func (e *JSONExporter) ExportToWriter(ctx context.Context, w io.Writer) error {
	export, err := e.Export(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}
