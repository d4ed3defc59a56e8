package entity

// AvailabilityCheckResult accumulates every product failing an availability
// pass. A missing product outranks an insufficient one when both occur.
type AvailabilityCheckResult struct {
	Status               AvailabilityStatus
	ProductsNotFound     []int
	ProductsNotAvailable []string
}

// AddNotFound records a product id missing from the catalog.
func (r *AvailabilityCheckResult) AddNotFound(productID int) {
	r.Status = AvailabilityProductsNotFound
	r.ProductsNotFound = append(r.ProductsNotFound, productID)
}

// AddNotAvailable records a product whose stock cannot cover the request.
func (r *AvailabilityCheckResult) AddNotAvailable(name string) {
	if r.Status == AvailabilityOk {
		r.Status = AvailabilityInsufficientStock
	}
	r.ProductsNotAvailable = append(r.ProductsNotAvailable, name)
}

// HasNotFoundProducts reports whether any requested product was missing.
func (r AvailabilityCheckResult) HasNotFoundProducts() bool {
	return len(r.ProductsNotFound) > 0
}

// HasUnavailableProducts reports whether any requested product lacked stock.
func (r AvailabilityCheckResult) HasUnavailableProducts() bool {
	return len(r.ProductsNotAvailable) > 0
}
