package optimizer

import (
	"fmt"

	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

// FreeShippingThreshold is the cart subtotal (ARS) at which shipping
// becomes free. Shared with checkout.
const FreeShippingThreshold = 25000

// priceBand is how far a gap-filler candidate's price may sit from the
// missing amount, on either side. A candidate cheaper than the gap is still
// eligible even though adding it does not reach the threshold; that matches
// the storefront's behavior.
const priceBand = 3000

const maxSuggestions = 2

type SuggestionType string

const (
	TypeCrossSell    SuggestionType = "cross-sell"
	TypeFreeShipping SuggestionType = "free-shipping"
	TypeBundle       SuggestionType = "bundle"
)

// Suggestion proposes one extra product for the current cart.
type Suggestion struct {
	Type    SuggestionType  `json:"type"`
	Product catalog.Product `json:"product"`
	Reason  string          `json:"reason"`
}

// Optimizer inspects cart contents and proposes up to two additions. Like
// the recommendation engine it is pure: same catalog and cart in, same
// suggestions out.
type Optimizer struct {
	catalog catalog.Repository
}

func New(repo catalog.Repository) *Optimizer {
	return &Optimizer{catalog: repo}
}

// Suggest runs the rules in priority order, stopping at two suggestions.
// The fallback rule only fires when the first four produced nothing.
func (o *Optimizer) Suggest(items []cart.Item) []Suggestion {
	suggestions := make([]Suggestion, 0, maxSuggestions)

	inCart := make(map[string]bool, len(items))
	skus := make([]string, 0, len(items))
	for _, it := range items {
		inCart[it.Sku] = true
		skus = append(skus, it.Sku)
	}
	cartProducts := o.catalog.ListProductsBySkus(skus)

	cartTotal := 0
	for _, it := range items {
		if p, err := o.catalog.FindProductBySku(it.Sku); err == nil {
			cartTotal += p.PriceArs * it.Quantity
		}
	}

	// 1. free-shipping gap filler
	if cartTotal > 0 && cartTotal < FreeShippingThreshold {
		needed := FreeShippingThreshold - cartTotal
		if candidate, ok := o.closestToGap(needed, inCart); ok {
			suggestions = append(suggestions, Suggestion{
				Type:    TypeFreeShipping,
				Product: candidate,
				Reason:  fmt.Sprintf("Agrega este producto para alcanzar envío gratis (faltan $%s)", formatARS(needed)),
			})
		}
	}

	// 2. sleep in cart, no vitamin D / zinc -> suggest GEN002
	if len(suggestions) < maxSuggestions &&
		hasCategory(cartProducts, catalog.GoalSleep) &&
		!hasAnyTag(cartProducts, "vitaminD", "zinc") {
		if p, err := o.catalog.FindProductBySku("GEN002"); err == nil && !inCart[p.Sku] {
			suggestions = append(suggestions, Suggestion{
				Type:    TypeCrossSell,
				Product: p,
				Reason:  "La Vitamina D apoya la calidad del sueño y el estado de ánimo",
			})
		}
	}

	// 3. energy in cart, no energy vitamins -> suggest ENR001
	if len(suggestions) < maxSuggestions &&
		hasCategory(cartProducts, catalog.GoalEnergy) &&
		!hasEnergyVitamins(cartProducts) {
		if p, err := o.catalog.FindProductBySku("ENR001"); err == nil && !inCart[p.Sku] {
			suggestions = append(suggestions, Suggestion{
				Type:    TypeCrossSell,
				Product: p,
				Reason:  "El Complejo B potencia el metabolismo energético",
			})
		}
	}

	// 4. gut in cart, no prebiotic -> suggest GUT002
	if len(suggestions) < maxSuggestions &&
		hasCategory(cartProducts, catalog.GoalGut) &&
		!hasSubcategory(cartProducts, "prebiotic") {
		if p, err := o.catalog.FindProductBySku("GUT002"); err == nil && !inCart[p.Sku] {
			suggestions = append(suggestions, Suggestion{
				Type:    TypeCrossSell,
				Product: p,
				Reason:  "Los prebióticos alimentan las bacterias buenas de tus probióticos",
			})
		}
	}

	// 5. fallback: highest-margin product when nothing else fired
	if len(suggestions) == 0 && cartTotal > 0 {
		if p, ok := o.highestMargin(inCart); ok {
			suggestions = append(suggestions, Suggestion{
				Type:    TypeCrossSell,
				Product: p,
				Reason:  "Complementa tu compra con este producto popular",
			})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// closestToGap picks the in-stock product, not already in the cart, whose
// price is within the band around needed and closest to it. Ties keep the
// first product in catalog order.
func (o *Optimizer) closestToGap(needed int, inCart map[string]bool) (catalog.Product, bool) {
	var best catalog.Product
	bestDiff := -1
	for _, p := range o.catalog.ListProducts() {
		if !p.InStock || inCart[p.Sku] {
			continue
		}
		if p.PriceArs > needed+priceBand || p.PriceArs < needed-priceBand {
			continue
		}
		diff := p.PriceArs - needed
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = p
			bestDiff = diff
		}
	}
	return best, bestDiff >= 0
}

func (o *Optimizer) highestMargin(inCart map[string]bool) (catalog.Product, bool) {
	var best catalog.Product
	bestMargin := -1
	for _, p := range o.catalog.ListProducts() {
		if !p.InStock || inCart[p.Sku] || p.MarginScore <= 75 {
			continue
		}
		if p.MarginScore > bestMargin {
			best = p
			bestMargin = p.MarginScore
		}
	}
	return best, bestMargin >= 0
}

func hasCategory(products []catalog.Product, goal catalog.Goal) bool {
	for _, p := range products {
		if p.Category == goal {
			return true
		}
	}
	return false
}

func hasAnyTag(products []catalog.Product, tags ...string) bool {
	for _, p := range products {
		for _, t := range tags {
			if p.HasTag(t) {
				return true
			}
		}
	}
	return false
}

func hasSubcategory(products []catalog.Product, sub string) bool {
	for _, p := range products {
		if p.Subcategory == sub {
			return true
		}
	}
	return false
}

func hasEnergyVitamins(products []catalog.Product) bool {
	for _, p := range products {
		if p.Category == catalog.GoalEnergy && p.Subcategory == "vitamins" {
			return true
		}
	}
	return false
}

// formatARS renders an amount with es-AR thousands separators (1.234.567).
func formatARS(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
		if len(s) > lead {
			out = append(out, '.')
		}
	}
	for i := lead; i < len(s); i += 3 {
		out = append(out, s[i:i+3]...)
		if i+3 < len(s) {
			out = append(out, '.')
		}
	}
	return string(out)
}
