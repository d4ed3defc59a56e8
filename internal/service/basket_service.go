package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbasket/backend/internal/entity"
	"github.com/shopbasket/backend/internal/messaging"
	"github.com/shopbasket/backend/internal/repository"
)

// BasketService implements the basket and checkout rules on top of the
// stock and basket repositories. Every operation comes as a Can...Check /
// execute pair; callers are expected to run the check first and only execute
// on Ok, so execute paths treat invalid input as a ContractError.
type BasketService struct {
	stock     repository.StockRepository
	baskets   repository.BasketRepository
	publisher messaging.Publisher
}

func NewBasketService(
	stock repository.StockRepository,
	baskets repository.BasketRepository,
	publisher messaging.Publisher,
) *BasketService {
	return &BasketService{
		stock:     stock,
		baskets:   baskets,
		publisher: publisher,
	}
}

// GetStock returns the full catalog.
func (s *BasketService) GetStock() []entity.StockItem {
	return s.stock.GetAll()
}

// GetBasket returns the user's current basket, empty for unknown users.
func (s *BasketService) GetBasket(userID string) []entity.BasketItem {
	return s.baskets.GetBasket(userID)
}

// CanAddItem validates adding one unit of the identified product.
func (s *BasketService) CanAddItem(userID string, identifier entity.ProductIdentifier) entity.BasketOperationStatus {
	if !identifier.Valid() {
		return entity.StatusInvalidIdentifier
	}

	product, ok := s.resolveProduct(identifier)
	if !ok {
		return entity.StatusProductNotFound
	}

	current := s.baskets.GetItem(userID, product.ID)
	if !product.HasSufficientStockFor(current.ItemCount + 1) {
		return entity.StatusInsufficientStock
	}
	return entity.StatusOk
}

// AddItem adds one unit of the identified product and returns the refreshed
// basket.
func (s *BasketService) AddItem(userID string, identifier entity.ProductIdentifier) ([]entity.BasketItem, error) {
	product, err := s.mustResolve("add item", identifier)
	if err != nil {
		return nil, err
	}

	slog.Info("Adding item to basket", "user_id", userID, "product_id", product.ID)
	s.baskets.AddItem(userID, product.ID, 1)
	return s.baskets.GetBasket(userID), nil
}

// CanRemoveItem validates removing one unit of the identified product.
// Removal never checks stock, only presence in the basket.
func (s *BasketService) CanRemoveItem(userID string, identifier entity.ProductIdentifier) entity.BasketOperationStatus {
	if !identifier.Valid() {
		return entity.StatusInvalidIdentifier
	}

	product, ok := s.resolveProduct(identifier)
	if !ok {
		return entity.StatusProductNotFound
	}

	if s.baskets.GetItem(userID, product.ID).ItemCount == 0 {
		return entity.StatusNotInBasket
	}
	return entity.StatusOk
}

// RemoveItem removes one unit of the identified product and returns the
// refreshed basket.
func (s *BasketService) RemoveItem(userID string, identifier entity.ProductIdentifier) ([]entity.BasketItem, error) {
	product, err := s.mustResolve("remove item", identifier)
	if err != nil {
		return nil, err
	}

	slog.Info("Removing item from basket", "user_id", userID, "product_id", product.ID)
	s.baskets.RemoveItem(userID, product.ID)
	return s.baskets.GetBasket(userID), nil
}

// CanAddItems validates a bulk add, accumulating every missing product id and
// every name lacking stock instead of stopping at the first failure.
func (s *BasketService) CanAddItems(userID string, items []entity.BasketItem) entity.AvailabilityCheckResult {
	var result entity.AvailabilityCheckResult

	for _, requested := range items {
		product, ok := s.stock.GetByID(requested.ProductID)
		if !ok {
			result.AddNotFound(requested.ProductID)
			continue
		}

		current := s.baskets.GetItem(userID, requested.ProductID)
		if !product.HasSufficientStockFor(current.ItemCount + requested.ItemCount) {
			result.AddNotAvailable(product.Name)
		}
	}

	return result
}

// AddItems applies every requested item to the user's basket and returns the
// refreshed basket. Unknown product ids are a ContractError: writing them
// would leave basket entries no checkout could ever resolve.
func (s *BasketService) AddItems(userID string, items []entity.BasketItem) ([]entity.BasketItem, error) {
	for _, requested := range items {
		if _, ok := s.stock.GetByID(requested.ProductID); !ok {
			return nil, &ContractError{Op: "bulk add", Reason: "product not found: " + strconv.Itoa(requested.ProductID)}
		}
	}

	slog.Info("Bulk adding items to basket", "user_id", userID, "items", len(items))
	for _, requested := range items {
		s.baskets.AddItem(userID, requested.ProductID, requested.ItemCount)
	}
	return s.baskets.GetBasket(userID), nil
}

// CanCheckout validates the user's existing basket against current stock,
// accumulating all failures the same way as a bulk add.
func (s *BasketService) CanCheckout(userID string) entity.AvailabilityCheckResult {
	var result entity.AvailabilityCheckResult

	for _, basketItem := range s.baskets.GetBasket(userID) {
		product, ok := s.stock.GetByID(basketItem.ProductID)
		if !ok {
			result.AddNotFound(basketItem.ProductID)
			continue
		}
		if !product.HasSufficientStockFor(basketItem.ItemCount) {
			result.AddNotAvailable(product.Name)
		}
	}

	return result
}

// Checkout converts the user's basket into an invoice, decrementing stock
// for every line and clearing the basket so a repeat checkout cannot re-bill
// the same items.
func (s *BasketService) Checkout(ctx context.Context, userID string) (*entity.Invoice, error) {
	basket := s.baskets.GetBasket(userID)
	slog.Info("Checking out basket", "user_id", userID, "items", len(basket))

	products := make(map[int]entity.StockItem, len(basket))
	for _, basketItem := range basket {
		product, ok := s.stock.GetByID(basketItem.ProductID)
		if !ok {
			return nil, &ContractError{Op: "checkout", Reason: "product not found: " + strconv.Itoa(basketItem.ProductID)}
		}
		products[basketItem.ProductID] = product
	}

	// Each decrement is atomic for its full quantity, so a race lost between
	// check and apply surfaces here instead of as negative stock.
	var depleted []entity.StockItem
	for _, basketItem := range basket {
		if !s.stock.Decrement(basketItem.ProductID, basketItem.ItemCount) {
			return nil, fmt.Errorf("failed to remove stock for product %d: insufficient stock", basketItem.ProductID)
		}
		if remaining, ok := s.stock.GetByID(basketItem.ProductID); ok && remaining.Stock == 0 {
			depleted = append(depleted, remaining)
		}
	}

	invoice := generateInvoice(userID, basket, products)
	s.baskets.Clear(userID)

	slog.Info("Basket checked out", "user_id", userID, "invoice_id", invoice.ID, "total", invoice.Total)
	s.publishCheckout(ctx, invoice, depleted)

	return invoice, nil
}

func (s *BasketService) resolveProduct(identifier entity.ProductIdentifier) (entity.StockItem, bool) {
	if identifier.ProductID != nil {
		return s.stock.GetByID(*identifier.ProductID)
	}
	product, err := s.stock.GetByName(identifier.ProductName)
	if err != nil {
		return entity.StockItem{}, false
	}
	return product, true
}

// mustResolve guards the execute paths: reaching them with an invalid or
// unknown identifier means the caller skipped the check.
func (s *BasketService) mustResolve(op string, identifier entity.ProductIdentifier) (entity.StockItem, error) {
	if !identifier.Valid() {
		return entity.StockItem{}, &ContractError{Op: op, Reason: "invalid product identifier"}
	}
	product, ok := s.resolveProduct(identifier)
	if !ok {
		return entity.StockItem{}, &ContractError{Op: op, Reason: "product not found: " + identifier.String()}
	}
	return product, nil
}

func generateInvoice(userID string, basket []entity.BasketItem, products map[int]entity.StockItem) *entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(basket))
	total := decimal.Zero

	for _, basketItem := range basket {
		product := products[basketItem.ProductID]
		cost := product.Price.Mul(decimal.NewFromInt(int64(basketItem.ItemCount)))
		items = append(items, entity.InvoiceItem{
			ProductName: product.Name,
			Quantity:    basketItem.ItemCount,
			Cost:        cost,
		})
		total = total.Add(cost)
	}

	return &entity.Invoice{
		ID:       uuid.New().String(),
		User:     userID,
		Total:    total,
		Items:    items,
		IssuedAt: time.Now(),
	}
}

// publishCheckout emits the checkout events. Publish failures are logged and
// never fail the request.
func (s *BasketService) publishCheckout(ctx context.Context, invoice *entity.Invoice, depleted []entity.StockItem) {
	event := entity.BasketCheckedOut{
		InvoiceID:    invoice.ID,
		User:         invoice.User,
		Total:        invoice.Total,
		Items:        invoice.Items,
		CheckedOutAt: invoice.IssuedAt,
	}
	if err := s.publisher.PublishEvent(ctx, "baskets.checked_out", invoice.User, event); err != nil {
		slog.Error("Failed to publish BasketCheckedOut", "user_id", invoice.User, "err", err)
	}

	for _, product := range depleted {
		event := entity.StockDepleted{ProductID: product.ID, Name: product.Name}
		if err := s.publisher.PublishEvent(ctx, "stock.depleted", strconv.Itoa(product.ID), event); err != nil {
			slog.Error("Failed to publish StockDepleted", "product_id", product.ID, "err", err)
		}
	}
}
