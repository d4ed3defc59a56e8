package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a single priced line on an invoice.
type InvoiceItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// Invoice is the immutable record of a completed checkout. Line costs are
// quantity times the unit price at checkout time; Total is their sum.
type Invoice struct {
	ID       string          `json:"id"`
	User     string          `json:"user"`
	Total    decimal.Decimal `json:"total"`
	Items    []InvoiceItem   `json:"items"`
	IssuedAt time.Time       `json:"issuedAt"`
}
