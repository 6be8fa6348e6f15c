package cart

// Item is a sku plus a positive quantity. Carts never hold duplicate skus;
// setting a quantity at or below zero removes the item.
type Item struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
}
