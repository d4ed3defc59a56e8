package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is implemented by every message published to the broker.
type Event interface {
	EventType() string
}

// BasketCheckedOut is emitted when a basket is converted into an invoice.
type BasketCheckedOut struct {
	InvoiceID    string          `json:"invoice_id"`
	User         string          `json:"user"`
	Total        decimal.Decimal `json:"total"`
	Items        []InvoiceItem   `json:"items"`
	CheckedOutAt time.Time       `json:"checked_out_at"`
}

func (e BasketCheckedOut) EventType() string { return "BasketCheckedOut" }

// StockDepleted is emitted when a checkout drives a product's stock to zero.
type StockDepleted struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
}

func (e StockDepleted) EventType() string { return "StockDepleted" }
