package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopbasket/backend/internal/entity"
)

// Importer reads the stock catalog from a comma-separated file. The first
// row is a header and is skipped; data rows are id,name,description,stock,price.
type Importer struct {
	path string
}

func New(path string) *Importer {
	return &Importer{path: path}
}

// Import loads and validates the catalog file.
func (im *Importer) Import() ([]entity.StockItem, error) {
	f, err := os.Open(im.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses and validates catalog rows from r. Malformed rows, negative
// quantities or prices, duplicate ids, and duplicate names (case-insensitive)
// fail the whole import rather than loading a catalog that would break name
// lookups later.
func Read(r io.Reader) ([]entity.StockItem, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse stock data: %w", err)
	}
	if len(records) == 0 {
		return []entity.StockItem{}, nil
	}

	// First record is the header.
	rows := records[1:]

	items := make([]entity.StockItem, 0, len(rows))
	seenIDs := make(map[int]bool, len(rows))
	seenNames := make(map[string]bool, len(rows))

	for i, row := range rows {
		line := i + 2
		item, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("stock data line %d: %w", line, err)
		}

		if seenIDs[item.ID] {
			return nil, fmt.Errorf("stock data line %d: duplicate product id %d", line, item.ID)
		}
		name := strings.ToLower(item.Name)
		if seenNames[name] {
			return nil, fmt.Errorf("stock data line %d: duplicate product name %q", line, item.Name)
		}
		seenIDs[item.ID] = true
		seenNames[name] = true

		items = append(items, item)
	}

	return items, nil
}

func parseRow(row []string) (entity.StockItem, error) {
	if len(row) != 5 {
		return entity.StockItem{}, fmt.Errorf("expected 5 fields, got %d", len(row))
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return entity.StockItem{}, fmt.Errorf("invalid id %q", row[0])
	}

	name := strings.TrimSpace(row[1])
	if name == "" {
		return entity.StockItem{}, fmt.Errorf("product %d has an empty name", id)
	}

	stock, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil || stock < 0 {
		return entity.StockItem{}, fmt.Errorf("invalid stock count %q", row[3])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row[4]))
	if err != nil || price.IsNegative() {
		return entity.StockItem{}, fmt.Errorf("invalid price %q", row[4])
	}

	return entity.StockItem{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(row[2]),
		Stock:       stock,
		Price:       price,
	}, nil
}
