package catalog

// Goal is the wellness category a shopper is browsing for. Products and kits
// are tagged with exactly one goal; "general" products belong to no goal and
// only surface through cart suggestions.
type Goal string

const (
	GoalSleep   Goal = "sleep"
	GoalEnergy  Goal = "energy"
	GoalGut     Goal = "gut"
	GoalSkin    Goal = "skin"
	GoalGeneral Goal = "general"
)

// Goals lists the questionnaire-selectable goals (general excluded).
var Goals = []Goal{GoalSleep, GoalEnergy, GoalGut, GoalSkin}

// Product is immutable reference data loaded once at startup.
// JSON tags follow the camelCase convention used across the project.
type Product struct {
	Sku              string   `json:"sku"`
	Name             string   `json:"name"`
	Brand            string   `json:"brand"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Category         Goal     `json:"category"`
	Subcategory      string   `json:"subcategory"`
	Benefits         []string `json:"benefits"`
	Tags             []string `json:"tags"`
	PriceArs         int      `json:"priceArs"`
	InStock          bool     `json:"inStock"`
	PopularityScore  int      `json:"popularityScore"`
	MarginScore      int      `json:"marginScore"`
	Image            string   `json:"image,omitempty"`
}

// HasBenefit reports whether the product carries the given benefit tag.
func (p Product) HasBenefit(benefit string) bool {
	for _, b := range p.Benefits {
		if b == benefit {
			return true
		}
	}
	return false
}

// HasTag reports whether the product carries the given free-form tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Kit is a pre-bundled, discounted multi-product offer tied to one goal.
type Kit struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        Goal     `json:"category"`
	Skus            []string `json:"skus"`
	PriceArs        int      `json:"priceArs"`
	DiscountPercent int      `json:"discountPercent"`
	Image           string   `json:"image,omitempty"`
	Benefits        []string `json:"benefits"`
}
