package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

type CSVExporter struct {
	categories CategoryReader
}

func NewCSVExporter(categories CategoryReader) *CSVExporter {
	return &CSVExporter{categories: categories}
}

func (e *CSVExporter) ExportToCSV(ctx context.Context, w io.Writer) error {
	res, err := e.categories.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to read categories: %w", err)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"ID", "Name", "Color", "Custom Color"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range res.Categories {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Color,
			c.CustomColor,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
