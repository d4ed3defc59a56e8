package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopbasket/backend/internal/entity"
	"github.com/shopbasket/backend/internal/repository"
)

// StockLedger is the in-memory stock catalog. It is created once from the
// imported catalog and is safe for concurrent use.
type StockLedger struct {
	mu    sync.RWMutex
	items []*entity.StockItem
	byID  map[int]*entity.StockItem
}

// NewStockLedger seeds the ledger with the imported catalog, preserving
// import order.
func NewStockLedger(items []entity.StockItem) *StockLedger {
	l := &StockLedger{
		items: make([]*entity.StockItem, 0, len(items)),
		byID:  make(map[int]*entity.StockItem, len(items)),
	}
	for i := range items {
		item := items[i]
		l.items = append(l.items, &item)
		l.byID[item.ID] = &item
	}
	return l
}

// GetAll returns a snapshot of the full catalog.
func (l *StockLedger) GetAll() []entity.StockItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entity.StockItem, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, *item)
	}
	return out
}

// GetByID looks up a catalog item by id.
func (l *StockLedger) GetByID(id int) (entity.StockItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item, ok := l.byID[id]
	if !ok {
		return entity.StockItem{}, false
	}
	return *item, true
}

// GetByName looks up a catalog item by case-insensitive exact name match.
// Name uniqueness is enforced at import, but the lookup still refuses to
// pick silently between duplicates.
func (l *StockLedger) GetByName(name string) (entity.StockItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var found *entity.StockItem
	for _, item := range l.items {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		if found != nil {
			return entity.StockItem{}, fmt.Errorf("%w: %q", repository.ErrAmbiguousName, name)
		}
		found = item
	}
	if found == nil {
		return entity.StockItem{}, fmt.Errorf("%w: %q", repository.ErrNotFound, name)
	}
	return *found, nil
}

// Increment adds one unit of stock to an existing item.
func (l *StockLedger) Increment(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", repository.ErrNotFound, id)
	}
	item.Stock++
	return nil
}

// Decrement subtracts quantity units of stock. It reports false and leaves
// the count unchanged when the item is unknown or the stock cannot cover the
// full quantity, so stock never goes below zero.
func (l *StockLedger) Decrement(id, quantity int) bool {
	if quantity <= 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.byID[id]
	if !ok || item.Stock < quantity {
		return false
	}
	item.Stock -= quantity
	return true
}
