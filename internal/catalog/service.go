package catalog

import (
	"context"
	"fmt"
	"io"
)

// importChunkSize keeps bulk-import transactions bounded; the legacy importer
// used the same batch size.
const importChunkSize = 100

// Service wraps the repository with the bulk import/export workflows.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ImportCSV parses the CSV stream and inserts the rows in chunks, each chunk
// in its own transaction. Returns the number of imported and skipped rows.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (imported, skipped int, err error) {
	products, skipped, err := ParseProductsCSV(r)
	if err != nil {
		return 0, 0, err
	}

	for start := 0; start < len(products); start += importChunkSize {
		end := start + importChunkSize
		if end > len(products) {
			end = len(products)
		}
		if err := s.repo.ImportBatch(ctx, products[start:end]); err != nil {
			return imported, skipped, fmt.Errorf("import batch at row %d: %w", start+1, err)
		}
		imported += end - start
	}

	return imported, skipped, nil
}

// ExportCSV streams the full catalog in the import column format.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return err
	}
	return WriteProductsCSV(w, products)
}
