package repository

import (
	"errors"

	"github.com/shopbasket/backend/internal/entity"
)

// ErrNotFound is returned when a stock item is missing from the catalog.
var ErrNotFound = errors.New("stock item not found")

// ErrAmbiguousName is returned when a name lookup matches more than one item.
var ErrAmbiguousName = errors.New("stock item name is ambiguous")

// StockRepository owns the product catalog and its on-hand quantities.
// All lookups are in-memory, so methods take no context.
type StockRepository interface {
	GetAll() []entity.StockItem
	GetByID(id int) (entity.StockItem, bool)
	// GetByName matches case-insensitively and fails with ErrAmbiguousName
	// when more than one item shares the name.
	GetByName(name string) (entity.StockItem, error)
	Increment(id int) error
	// Decrement subtracts the full quantity atomically. It reports false and
	// changes nothing when the item is unknown or cannot cover the quantity.
	Decrement(id, quantity int) bool
}

// BasketRepository owns per-user basket state.
type BasketRepository interface {
	GetBasket(userID string) []entity.BasketItem
	// GetItem returns a zero-count item when the product is not in the basket.
	GetItem(userID string, productID int) entity.BasketItem
	AddItem(userID string, productID, quantity int)
	// RemoveItem decrements by exactly one, deleting the item at zero. It
	// reports false when the product is not in the basket.
	RemoveItem(userID string, productID int) bool
	Clear(userID string)
}
