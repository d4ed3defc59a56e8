package memory

import (
	"sync"

	"github.com/shopbasket/backend/internal/entity"
)

// BasketStore keeps one ordered basket per user. Baskets are created lazily
// on first mutation; reads never create state. Safe for concurrent use.
type BasketStore struct {
	mu      sync.RWMutex
	baskets map[string][]entity.BasketItem
}

func NewBasketStore() *BasketStore {
	return &BasketStore{
		baskets: make(map[string][]entity.BasketItem),
	}
}

// GetBasket returns a copy of the user's basket, empty for unknown users.
func (s *BasketStore) GetBasket(userID string) []entity.BasketItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.baskets[userID]
	out := make([]entity.BasketItem, len(items))
	copy(out, items)
	return out
}

// GetItem returns the user's entry for the product, or a zero-count item
// when the product is not in the basket.
func (s *BasketStore) GetItem(userID string, productID int) entity.BasketItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.baskets[userID] {
		if item.ProductID == productID {
			return item
		}
	}
	return entity.BasketItem{ProductID: productID}
}

// AddItem adds quantity units of the product to the user's basket, creating
// the entry on first add. Non-positive quantities are ignored so a zero-count
// item is never stored.
func (s *BasketStore) AddItem(userID string, productID, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.baskets[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].ItemCount += quantity
			return
		}
	}
	s.baskets[userID] = append(items, entity.BasketItem{ProductID: productID, ItemCount: quantity})
}

// RemoveItem decrements the user's entry by exactly one, deleting it when
// the count reaches zero. It reports false when the product is not in the
// basket, leaving everything unchanged.
func (s *BasketStore) RemoveItem(userID string, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.baskets[userID]
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		items[i].ItemCount--
		if items[i].ItemCount <= 0 {
			s.baskets[userID] = append(items[:i], items[i+1:]...)
		}
		return true
	}
	return false
}

// Clear drops the user's basket entirely.
func (s *BasketStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.baskets, userID)
}
