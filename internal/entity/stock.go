package entity

import "github.com/shopspring/decimal"

// StockItem represents a catalog product with an on-hand quantity.
// The catalog is loaded once at startup; only Stock changes afterwards.
type StockItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
}

// HasSufficientStockFor reports whether the on-hand quantity covers the request.
func (s StockItem) HasSufficientStockFor(quantity int) bool {
	return s.Stock >= quantity
}
