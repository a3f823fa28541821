package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
)

// CSVColumns is the column set used by both bulk import and export.
var CSVColumns = []string{
	"name", "description", "price", "original_price", "image_url",
	"category", "in_stock", "rating", "review_count",
}

// ParseProductsCSV reads a header-based CSV. Rows missing any of name, price
// or category are skipped rather than failing the whole file; the skip count
// is reported so callers can tell the operator. Unknown columns are ignored.
func ParseProductsCSV(r io.Reader) (products []Product, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, fmt.Errorf("empty csv")
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, 0, fmt.Errorf("missing required column %q", "name")
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", line, err)
		}

		name := field(record, "name")
		rawPrice := field(record, "price")
		category := field(record, "category")
		if name == "" || rawPrice == "" || category == "" {
			skipped++
			continue
		}

		price, err := cart.ParseAmount(rawPrice)
		if err != nil {
			skipped++
			continue
		}

		p := Product{
			Name:          name,
			Description:   field(record, "description"),
			Price:         price,
			OriginalPrice: optionalFloat(field(record, "original_price")),
			ImageURL:      field(record, "image_url"),
			Category:      category,
			InStock:       parseBool(field(record, "in_stock"), true),
			Rating:        optionalFloat(field(record, "rating")),
			ReviewCount:   optionalInt(field(record, "review_count")),
		}
		products = append(products, p)
	}

	return products, skipped, nil
}

// WriteProductsCSV writes the export with the same column set the importer
// accepts, so an export can be re-imported as-is.
func WriteProductsCSV(w io.Writer, products []Product) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.Name,
			p.Description,
			formatFloat(p.Price),
			formatOptionalFloat(p.OriginalPrice),
			p.ImageURL,
			p.Category,
			strconv.FormatBool(p.InStock),
			formatOptionalFloat(p.Rating),
			formatOptionalInt(p.ReviewCount),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", p.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// parseBool accepts the permissive truthy forms the legacy import tolerated.
func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
