package entity

// BasketOperationStatus is the outcome of a single-item availability check.
type BasketOperationStatus int

const (
	// StatusOk means the basket operation can proceed.
	StatusOk BasketOperationStatus = iota

	// StatusProductNotFound means the identified product is not in the catalog.
	StatusProductNotFound

	// StatusInsufficientStock means the catalog cannot cover the request.
	StatusInsufficientStock

	// StatusInvalidIdentifier means the supplied product identifier was invalid.
	StatusInvalidIdentifier

	// StatusNotInBasket means the item is not present in the user's basket.
	StatusNotInBasket
)

// AvailabilityStatus classifies a bulk-add or checkout availability check.
type AvailabilityStatus int

const (
	AvailabilityOk AvailabilityStatus = iota
	AvailabilityProductsNotFound
	AvailabilityInsufficientStock
)
