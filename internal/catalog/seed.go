package catalog

// DefaultProducts returns the built-in catalog used when no database is
// configured. Order matters: it is the canonical catalog order used for
// deterministic tie-breaking everywhere downstream.
func DefaultProducts() []Product {
	return []Product{
		{
			Sku:              "SLP001",
			Name:             "Melatonina 3mg",
			Brand:            "NaturVida",
			ShortDescription: "Ayuda a conciliar el sueño más rápido.",
			Category:         GoalSleep,
			Subcategory:      "melatonin",
			Benefits:         []string{"sleep-onset"},
			Tags:             []string{"melatonin"},
			PriceArs:         8500,
			InStock:          true,
			PopularityScore:  92,
			MarginScore:      60,
			Image:            "/placeholder-melatonin.svg",
		},
		{
			Sku:              "SLP002",
			Name:             "Magnesio Citrato 400mg",
			Brand:            "NaturVida",
			ShortDescription: "Relajación muscular y descanso profundo.",
			Category:         GoalSleep,
			Subcategory:      "minerals",
			Benefits:         []string{"relaxation", "sleep-quality"},
			Tags:             []string{"magnesium"},
			PriceArs:         11500,
			InStock:          true,
			PopularityScore:  85,
			MarginScore:      70,
			Image:            "/placeholder-magnesium.svg",
		},
		{
			Sku:              "SLP003",
			Name:             "Valeriana Forte",
			Brand:            "Herbalia",
			ShortDescription: "Extracto herbal tradicional para dormir.",
			Category:         GoalSleep,
			Subcategory:      "herbal",
			Benefits:         []string{"sleep-onset", "relaxation"},
			Tags:             []string{"valerian"},
			PriceArs:         7200,
			InStock:          false,
			PopularityScore:  61,
			MarginScore:      55,
			Image:            "/placeholder-valerian.svg",
		},
		{
			Sku:              "SLP004",
			Name:             "Ashwagandha KSM-66",
			Brand:            "Adaptia",
			ShortDescription: "Adaptógeno para el estrés y la recuperación.",
			Category:         GoalSleep,
			Subcategory:      "adaptogen",
			Benefits:         []string{"stress-relief", "relaxation", "recovery"},
			Tags:             []string{"ashwagandha"},
			PriceArs:         16500,
			InStock:          true,
			PopularityScore:  70,
			MarginScore:      70,
			Image:            "/placeholder-ashwagandha.svg",
		},
		{
			Sku:              "ENR001",
			Name:             "Complejo B Activado",
			Brand:            "VitalMax",
			ShortDescription: "Vitaminas B en formas activas para energía diaria.",
			Category:         GoalEnergy,
			Subcategory:      "vitamins",
			Benefits:         []string{"energy", "metabolism"},
			Tags:             []string{"bcomplex"},
			PriceArs:         9800,
			InStock:          true,
			PopularityScore:  88,
			MarginScore:      72,
			Image:            "/placeholder-bcomplex.svg",
		},
		{
			Sku:              "ENR002",
			Name:             "Creatina Monohidrato",
			Brand:            "VitalMax",
			ShortDescription: "Rendimiento y fuerza para tu entrenamiento.",
			Category:         GoalEnergy,
			Subcategory:      "performance",
			Benefits:         []string{"endurance", "performance"},
			Tags:             []string{"creatine"},
			PriceArs:         14000,
			InStock:          true,
			PopularityScore:  75,
			MarginScore:      65,
			Image:            "/placeholder-creatine.svg",
		},
		{
			Sku:              "ENR003",
			Name:             "CoQ10 Ubiquinol 100mg",
			Brand:            "CellCore",
			ShortDescription: "Energía celular y salud cardiovascular.",
			Category:         GoalEnergy,
			Subcategory:      "antioxidant",
			Benefits:         []string{"metabolism", "cellular-health"},
			Tags:             []string{"coq10"},
			PriceArs:         22000,
			InStock:          true,
			PopularityScore:  68,
			MarginScore:      78,
			Image:            "/placeholder-coq10.svg",
		},
		{
			Sku:              "GUT001",
			Name:             "Probióticos 50B UFC",
			Brand:            "FloraPlus",
			ShortDescription: "10 cepas para equilibrar tu microbioma.",
			Category:         GoalGut,
			Subcategory:      "probiotic",
			Benefits:         []string{"digestion", "gut-flora"},
			Tags:             []string{"probiotics"},
			PriceArs:         19500,
			InStock:          true,
			PopularityScore:  90,
			MarginScore:      74,
			Image:            "/placeholder-probiotic.svg",
		},
		{
			Sku:              "GUT002",
			Name:             "Prebiótico Inulina",
			Brand:            "FloraPlus",
			ShortDescription: "Fibra prebiótica que alimenta tu flora.",
			Category:         GoalGut,
			Subcategory:      "prebiotic",
			Benefits:         []string{"gut-flora", "digestion"},
			Tags:             []string{"inulin"},
			PriceArs:         8900,
			InStock:          true,
			PopularityScore:  72,
			MarginScore:      80,
			Image:            "/placeholder-prebiotic.svg",
		},
		{
			Sku:              "GUT003",
			Name:             "Enzimas Digestivas Full",
			Brand:            "FloraPlus",
			ShortDescription: "Mezcla de enzimas para digestiones pesadas.",
			Category:         GoalGut,
			Subcategory:      "enzymes",
			Benefits:         []string{"digestion", "nutrient-absorption"},
			Tags:             []string{"enzymes"},
			PriceArs:         12500,
			InStock:          true,
			PopularityScore:  66,
			MarginScore:      71,
			Image:            "/placeholder-enzymes.svg",
		},
		{
			Sku:              "GUT004",
			Name:             "L-Glutamina Pura",
			Brand:            "CellCore",
			ShortDescription: "Soporte para la mucosa intestinal.",
			Category:         GoalGut,
			Subcategory:      "aminoacid",
			Benefits:         []string{"gut-lining", "recovery"},
			Tags:             []string{"glutamine"},
			PriceArs:         13800,
			InStock:          true,
			PopularityScore:  58,
			MarginScore:      69,
			Image:            "/placeholder-glutamine.svg",
		},
		{
			Sku:              "GUT005",
			Name:             "Fibra de Psyllium",
			Brand:            "Herbalia",
			ShortDescription: "Regularidad intestinal de forma natural.",
			Category:         GoalGut,
			Subcategory:      "fiber",
			Benefits:         []string{"regularity", "digestion"},
			Tags:             []string{"psyllium"},
			PriceArs:         7600,
			InStock:          true,
			PopularityScore:  70,
			MarginScore:      62,
			Image:            "/placeholder-psyllium.svg",
		},
		{
			Sku:              "SKN001",
			Name:             "Colágeno Hidrolizado",
			Brand:            "DermaGlow",
			ShortDescription: "Péptidos de colágeno para piel firme.",
			Category:         GoalSkin,
			Subcategory:      "collagen",
			Benefits:         []string{"skin-elasticity", "anti-aging"},
			Tags:             []string{"collagen"},
			PriceArs:         21000,
			InStock:          true,
			PopularityScore:  89,
			MarginScore:      76,
			Image:            "/placeholder-collagen.svg",
		},
		{
			Sku:              "SKN002",
			Name:             "Ácido Hialurónico 120mg",
			Brand:            "DermaGlow",
			ShortDescription: "Hidratación profunda desde adentro.",
			Category:         GoalSkin,
			Subcategory:      "hydration",
			Benefits:         []string{"hydration", "skin-elasticity"},
			Tags:             []string{"hyaluronic"},
			PriceArs:         18000,
			InStock:          true,
			PopularityScore:  77,
			MarginScore:      73,
			Image:            "/placeholder-hyaluronic.svg",
		},
		{
			Sku:              "SKN003",
			Name:             "Astaxantina 12mg",
			Brand:            "DermaGlow",
			ShortDescription: "Antioxidante potente contra el fotoenvejecimiento.",
			Category:         GoalSkin,
			Subcategory:      "antioxidant",
			Benefits:         []string{"anti-aging", "antioxidant"},
			Tags:             []string{"astaxanthin"},
			PriceArs:         16800,
			InStock:          true,
			PopularityScore:  55,
			MarginScore:      82,
			Image:            "/placeholder-astaxanthin.svg",
		},
		{
			Sku:              "GEN001",
			Name:             "Multivitamínico Diario",
			Brand:            "VitalMax",
			ShortDescription: "Base completa de vitaminas y minerales.",
			Category:         GoalGeneral,
			Subcategory:      "vitamins",
			Benefits:         []string{"general-health"},
			Tags:             []string{"multivitamin"},
			PriceArs:         10500,
			InStock:          true,
			PopularityScore:  81,
			MarginScore:      77,
			Image:            "/placeholder-multivitamin.svg",
		},
		{
			Sku:              "GEN002",
			Name:             "Vitamina D3 + Zinc",
			Brand:            "VitalMax",
			ShortDescription: "Inmunidad, ánimo y calidad de sueño.",
			Category:         GoalGeneral,
			Subcategory:      "vitamins",
			Benefits:         []string{"immunity", "mood"},
			Tags:             []string{"vitaminD", "zinc"},
			PriceArs:         6900,
			InStock:          true,
			PopularityScore:  86,
			MarginScore:      79,
			Image:            "/placeholder-vitamind.svg",
		},
	}
}

// DefaultKits returns the built-in kit bundles.
func DefaultKits() []Kit {
	return []Kit{
		{
			ID:              "KIT001",
			Name:            "Sleep Starter Kit",
			Description:     "Combo perfecto para empezar a mejorar tu descanso naturalmente.",
			Category:        GoalSleep,
			Skus:            []string{"SLP001", "SLP002"},
			PriceArs:        18500,
			DiscountPercent: 10,
			Image:           "/placeholder-kit-sleep-starter.svg",
			Benefits:        []string{"sleep-onset", "relaxation", "sleep-quality"},
		},
		{
			ID:              "KIT002",
			Name:            "Deep Sleep Kit",
			Description:     "Protocolo avanzado para descanso profundo y reparador.",
			Category:        GoalSleep,
			Skus:            []string{"SLP001", "SLP002", "SLP004"},
			PriceArs:        36000,
			DiscountPercent: 15,
			Image:           "/placeholder-kit-deep-sleep.svg",
			Benefits:        []string{"sleep-quality", "stress-relief", "recovery"},
		},
		{
			ID:              "KIT003",
			Name:            "Energy Daily Kit",
			Description:     "Energía sostenida para todo el día sin estimulantes.",
			Category:        GoalEnergy,
			Skus:            []string{"ENR001", "ENR003"},
			PriceArs:        32000,
			DiscountPercent: 12,
			Image:           "/placeholder-kit-energy.svg",
			Benefits:        []string{"energy", "metabolism", "cellular-health"},
		},
		{
			ID:              "KIT004",
			Name:            "Gut Balance Kit",
			Description:     "Sistema completo para salud digestiva óptima.",
			Category:        GoalGut,
			Skus:            []string{"GUT001", "GUT002", "GUT003"},
			PriceArs:        45000,
			DiscountPercent: 15,
			Image:           "/placeholder-kit-gut.svg",
			Benefits:        []string{"digestion", "gut-flora", "nutrient-absorption"},
		},
		{
			ID:              "KIT005",
			Name:            "Skin Radiance Kit",
			Description:     "Belleza desde adentro con nutrientes esenciales.",
			Category:        GoalSkin,
			Skus:            []string{"SKN001", "SKN002"},
			PriceArs:        39000,
			DiscountPercent: 12,
			Image:           "/placeholder-kit-skin.svg",
			Benefits:        []string{"skin-elasticity", "hydration", "anti-aging"},
		},
		{
			ID:              "KIT006",
			Name:            "Recovery Kit",
			Description:     "Recuperación integral para cuerpo y mente.",
			Category:        GoalSleep,
			Skus:            []string{"SLP004", "GUT004", "ENR003"},
			PriceArs:        52000,
			DiscountPercent: 18,
			Image:           "/placeholder-kit-recovery.svg",
			Benefits:        []string{"recovery", "stress-relief", "cellular-health"},
		},
	}
}
