package checkout

import (
	"fmt"
	"time"
)

// FlatShippingArs is charged below the free-shipping threshold.
const FlatShippingArs = 2500

// repurchaseDays is the suggested supplement repurchase cycle.
const repurchaseDays = 30

// OrderItem is a priced snapshot of one cart line at checkout time.
type OrderItem struct {
	Sku          string `json:"sku"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPriceArs int    `json:"unitPriceArs"`
}

// Order is a simulated purchase. No payment is processed; the order exists
// so the confirmation page has something to show.
type Order struct {
	OrderNumber     string      `json:"orderNumber"`
	Items           []OrderItem `json:"items"`
	SubtotalArs     int         `json:"subtotalArs"`
	ShippingArs     int         `json:"shippingArs"`
	GrandTotalArs   int         `json:"grandTotalArs"`
	ReminderEnabled bool        `json:"reminderEnabled"`
	RepurchaseDate  string      `json:"repurchaseDate"`
	CreatedAt       string      `json:"createdAt"`
}

// newOrderNumber mirrors the storefront format: FQ- plus the last eight
// digits of the millisecond timestamp.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("FQ-%08d", now.UnixMilli()%100000000)
}
