package assistant

import (
	"fmt"
	"sort"

	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

const (
	baseMatchScore   = 50.0
	matchWeight      = 0.55
	popularityWeight = 0.25
	marginWeight     = 0.20

	maxRecommendedProducts = 2
)

const (
	genericDisclaimer = "Esta es información general de bienestar. No constituye consejo médico."
	sensitiveWarning  = "⚠️ Detectamos una condición que requiere atención profesional. Te recomendamos consultar con un farmacéutico o médico antes de tomar suplementos."
)

// sensitiveAnswers are the question3 values that trigger the professional
// consultation warning, independent of the active goal.
var sensitiveAnswers = map[string]bool{
	"pregnant":   true,
	"medication": true,
	"chronic":    true,
}

// scoringRule awards a bonus when the answer in a slot matches and the
// product satisfies the attribute predicate. A nil predicate matches every
// product. Bonuses stack additively.
type scoringRule struct {
	slot    int
	answer  string
	matches func(catalog.Product) bool
	bonus   float64
}

func hasBenefit(benefit string) func(catalog.Product) bool {
	return func(p catalog.Product) bool { return p.HasBenefit(benefit) }
}

func hasSubcategory(sub string) func(catalog.Product) bool {
	return func(p catalog.Product) bool { return p.Subcategory == sub }
}

var scoringRules = map[catalog.Goal][]scoringRule{
	catalog.GoalSleep: {
		{slot: 1, answer: "onset", matches: hasBenefit("sleep-onset"), bonus: 30},
		{slot: 1, answer: "quality", matches: hasBenefit("sleep-quality"), bonus: 30},
		{slot: 1, answer: "both", matches: nil, bonus: 20},
		{slot: 2, answer: "yes", matches: hasBenefit("stress-relief"), bonus: 20},
		{slot: 2, answer: "yes", matches: hasBenefit("relaxation"), bonus: 15},
	},
	catalog.GoalEnergy: {
		{slot: 1, answer: "morning", matches: hasSubcategory("vitamins"), bonus: 25},
		{slot: 1, answer: "allday", matches: hasBenefit("metabolism"), bonus: 25},
		{slot: 2, answer: "yes", matches: hasSubcategory("performance"), bonus: 20},
		{slot: 2, answer: "yes", matches: hasBenefit("endurance"), bonus: 15},
	},
	catalog.GoalGut: {
		{slot: 1, answer: "bloating", matches: hasSubcategory("probiotic"), bonus: 30},
		{slot: 1, answer: "irregularity", matches: hasSubcategory("fiber"), bonus: 30},
		{slot: 1, answer: "discomfort", matches: hasSubcategory("enzymes"), bonus: 25},
		{slot: 2, answer: "daily", matches: hasSubcategory("probiotic"), bonus: 20},
		{slot: 3, answer: "yes", matches: hasSubcategory("probiotic"), bonus: 25},
	},
	catalog.GoalSkin: {
		{slot: 1, answer: "dryness", matches: hasBenefit("hydration"), bonus: 30},
		{slot: 1, answer: "aging", matches: hasBenefit("anti-aging"), bonus: 30},
		{slot: 1, answer: "dullness", matches: hasBenefit("skin-elasticity"), bonus: 25},
	},
}

// Engine turns questionnaire answers into a ranked recommendation. It is a
// pure function over the catalog snapshot: identical inputs yield identical
// output, including ordering.
type Engine struct {
	catalog catalog.Repository
}

func NewEngine(repo catalog.Repository) *Engine {
	return &Engine{catalog: repo}
}

// Recommend never fails: unknown goals or answer values simply match no
// rule and degrade to an empty product list with the generic disclaimer.
func (e *Engine) Recommend(answers Answers) Recommendation {
	candidates := e.candidates(answers.Goal)

	warnings := []string{genericDisclaimer}
	if sensitiveAnswers[answers.Question3] {
		warnings = append(warnings, sensitiveWarning)
	}

	type scored struct {
		product catalog.Product
		score   float64
	}
	scoredProducts := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		scoredProducts = append(scoredProducts, scored{product: p, score: e.score(p, answers)})
	}

	// stable sort keeps catalog order for equal scores
	sort.SliceStable(scoredProducts, func(i, j int) bool {
		return scoredProducts[i].score > scoredProducts[j].score
	})

	n := len(scoredProducts)
	if n > maxRecommendedProducts {
		n = maxRecommendedProducts
	}
	recommended := make([]catalog.Product, 0, n)
	for _, s := range scoredProducts[:n] {
		recommended = append(recommended, s.product)
	}

	kit := e.selectKit(answers)

	return Recommendation{
		RecommendedProducts: recommended,
		RecommendedKit:      kit,
		Rationale:           buildRationale(answers, recommended, kit),
		Warnings:            warnings,
	}
}

func (e *Engine) candidates(goal catalog.Goal) []catalog.Product {
	all := e.catalog.ListProducts()
	out := make([]catalog.Product, 0, len(all))
	for _, p := range all {
		if p.Category == goal && p.InStock {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) score(p catalog.Product, answers Answers) float64 {
	match := baseMatchScore
	for _, rule := range scoringRules[answers.Goal] {
		if answerForSlot(answers, rule.slot) != rule.answer {
			continue
		}
		if rule.matches != nil && !rule.matches(p) {
			continue
		}
		match += rule.bonus
	}
	return match*matchWeight + float64(p.PopularityScore)*popularityWeight + float64(p.MarginScore)*marginWeight
}

func answerForSlot(answers Answers, slot int) string {
	switch slot {
	case 1:
		return answers.Question1
	case 2:
		return answers.Question2
	case 3:
		return answers.Question3
	}
	return ""
}

// selectKit picks the bundle for a goal. Sleep branches on the stress
// answer and falls back to the first sleep kit when the named id is missing;
// the other goals map 1:1 with no fallback.
func (e *Engine) selectKit(answers Answers) *catalog.Kit {
	switch answers.Goal {
	case catalog.GoalSleep:
		id := "KIT001"
		if answers.Question2 == "yes" {
			id = "KIT002"
		}
		if k, err := e.catalog.FindKitByID(id); err == nil {
			return &k
		}
		for _, k := range e.catalog.ListKits() {
			if k.Category == catalog.GoalSleep {
				return &k
			}
		}
		return nil
	case catalog.GoalEnergy:
		return e.kitByID("KIT003")
	case catalog.GoalGut:
		return e.kitByID("KIT004")
	case catalog.GoalSkin:
		return e.kitByID("KIT005")
	}
	return nil
}

func (e *Engine) kitByID(id string) *catalog.Kit {
	k, err := e.catalog.FindKitByID(id)
	if err != nil {
		return nil
	}
	return &k
}

// buildRationale assembles the explanation in a fixed order: goal sentences,
// top product sentence, kit sentence.
func buildRationale(answers Answers, recommended []catalog.Product, kit *catalog.Kit) []string {
	rationale := make([]string, 0, 4)

	switch answers.Goal {
	case catalog.GoalSleep:
		rationale = append(rationale, "Basado en tus respuestas, priorizamos ingredientes que ayudan con la relajación y el inicio del sueño.")
		if answers.Question2 == "yes" {
			rationale = append(rationale, "Incluimos adaptógenos para manejar el estrés, un factor clave en tu dificultad para dormir.")
		}
	case catalog.GoalEnergy:
		rationale = append(rationale, "Seleccionamos nutrientes que apoyan la producción de energía celular de forma sostenida.")
		if answers.Question2 == "yes" {
			rationale = append(rationale, "Agregamos ingredientes que mejoran resistencia física para complementar tu entrenamiento.")
		}
	case catalog.GoalGut:
		rationale = append(rationale, "Priorizamos probióticos y prebióticos para equilibrar tu microbioma intestinal.")
		if answers.Question3 == "yes" {
			rationale = append(rationale, "Los antibióticos pueden alterar tu flora. Los probióticos ayudan a restaurar el balance.")
		}
	case catalog.GoalSkin:
		rationale = append(rationale, "Seleccionamos nutrientes que nutren la piel desde adentro: colágeno, hidratación y antioxidantes.")
	}

	if len(recommended) > 0 {
		rationale = append(rationale, fmt.Sprintf("%s es nuestro top pick por su alta efectividad y popularidad.", recommended[0].Name))
	}
	if kit != nil {
		rationale = append(rationale, fmt.Sprintf("El %s combina los productos clave con un descuento del %d%%.", kit.Name, kit.DiscountPercent))
	}
	return rationale
}
