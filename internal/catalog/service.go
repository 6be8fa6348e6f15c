package catalog

// Service exposes read-only catalog operations to handlers.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts() []Product {
	return s.repo.ListProducts()
}

func (s *Service) ListKits() []Kit {
	return s.repo.ListKits()
}

func (s *Service) GetProductBySku(sku string) (Product, error) {
	return s.repo.FindProductBySku(sku)
}

func (s *Service) GetKitByID(id string) (Kit, error) {
	return s.repo.FindKitByID(id)
}

// ListProductsByGoal returns catalog-ordered products for one goal category.
func (s *Service) ListProductsByGoal(goal Goal) []Product {
	all := s.repo.ListProducts()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Category == goal {
			out = append(out, p)
		}
	}
	return out
}
