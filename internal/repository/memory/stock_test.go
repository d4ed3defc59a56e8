package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbasket/backend/internal/entity"
	"github.com/shopbasket/backend/internal/repository"
)

func newTestLedger() *StockLedger {
	return NewStockLedger([]entity.StockItem{
		{ID: 1, Name: "Widget", Description: "A widget", Stock: 2, Price: decimal.RequireFromString("6.99")},
		{ID: 2, Name: "Gadget", Description: "A gadget", Stock: 5, Price: decimal.RequireFromString("12.50")},
	})
}

func TestGetAllReturnsCatalogInImportOrder(t *testing.T) {
	ledger := newTestLedger()

	items := ledger.GetAll()

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestGetByIDUnknownProduct(t *testing.T) {
	ledger := newTestLedger()

	_, ok := ledger.GetByID(99)

	assert.False(t, ok)
}

func TestGetByNameIsCaseInsensitive(t *testing.T) {
	ledger := newTestLedger()

	item, err := ledger.GetByName("wIdGeT")

	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)
}

func TestGetByNameUnknownProduct(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.GetByName("missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByNameRefusesAmbiguousMatch(t *testing.T) {
	ledger := NewStockLedger([]entity.StockItem{
		{ID: 1, Name: "Widget", Stock: 1},
		{ID: 2, Name: "widget", Stock: 1},
	})

	_, err := ledger.GetByName("widget")

	assert.ErrorIs(t, err, repository.ErrAmbiguousName)
}

func TestIncrementAddsOneUnit(t *testing.T) {
	ledger := newTestLedger()

	require.NoError(t, ledger.Increment(1))

	item, ok := ledger.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, 3, item.Stock)
}

func TestIncrementUnknownProduct(t *testing.T) {
	ledger := newTestLedger()

	assert.ErrorIs(t, ledger.Increment(99), repository.ErrNotFound)
}

func TestDecrementHonorsFullQuantity(t *testing.T) {
	ledger := newTestLedger()

	assert.True(t, ledger.Decrement(1, 2))

	item, ok := ledger.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, 0, item.Stock)
}

func TestDecrementNeverGoesBelowZero(t *testing.T) {
	ledger := newTestLedger()

	assert.False(t, ledger.Decrement(1, 3), "quantity above stock must be refused")

	item, ok := ledger.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, 2, item.Stock, "a refused decrement must not change stock")

	require.True(t, ledger.Decrement(1, 2))
	assert.False(t, ledger.Decrement(1, 1), "decrementing at zero must fail")

	item, _ = ledger.GetByID(1)
	assert.Equal(t, 0, item.Stock)
}

func TestDecrementUnknownProduct(t *testing.T) {
	ledger := newTestLedger()

	assert.False(t, ledger.Decrement(99, 1))
}

func TestDecrementRejectsNonPositiveQuantity(t *testing.T) {
	ledger := newTestLedger()

	assert.False(t, ledger.Decrement(1, 0))
	assert.False(t, ledger.Decrement(1, -1))
}
