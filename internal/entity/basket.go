package entity

// BasketItem is a product/quantity pair inside a user's basket.
// An item whose count reaches zero is removed from the basket rather
// than kept at zero.
type BasketItem struct {
	ProductID int `json:"productId"`
	ItemCount int `json:"itemCount"`
}
