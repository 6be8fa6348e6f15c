package catalog

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresLoader reads the catalog tables into memory. The catalog is
// immutable for the process lifetime, so the loader runs once at startup and
// the result is wrapped in an InMemoryRepository; a reload requires a full
// restart.
type PostgresLoader struct {
	db *sql.DB
}

const (
	loadProductsQuery = `
		SELECT sku, name, brand, short_desc, category, subcategory, benefits, tags,
		       price_ars, in_stock, popularity_score, margin_score, image
		FROM products
		ORDER BY ord, sku
	`
	loadKitsQuery = `
		SELECT kit_id, name, description, category, skus, price_ars, discount_percent, image, benefits
		FROM kits
		ORDER BY ord, kit_id
	`
)

func NewPostgresLoader(db *sql.DB) *PostgresLoader {
	return &PostgresLoader{db: db}
}

// Load fetches products and kits in catalog order.
func (l *PostgresLoader) Load() ([]Product, []Kit, error) {
	products, err := l.loadProducts()
	if err != nil {
		return nil, nil, err
	}
	kits, err := l.loadKits()
	if err != nil {
		return nil, nil, err
	}
	return products, kits, nil
}

func (l *PostgresLoader) loadProducts() ([]Product, error) {
	rows, err := l.db.Query(loadProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var (
			p         Product
			shortDesc sql.NullString
			image     sql.NullString
			category  string
		)
		if err := rows.Scan(
			&p.Sku,
			&p.Name,
			&p.Brand,
			&shortDesc,
			&category,
			&p.Subcategory,
			pq.Array(&p.Benefits),
			pq.Array(&p.Tags),
			&p.PriceArs,
			&p.InStock,
			&p.PopularityScore,
			&p.MarginScore,
			&image,
		); err != nil {
			return nil, err
		}
		p.Category = Goal(category)
		if shortDesc.Valid {
			p.ShortDescription = shortDesc.String
		}
		if image.Valid {
			p.Image = image.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (l *PostgresLoader) loadKits() ([]Kit, error) {
	rows, err := l.db.Query(loadKitsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Kit, 0)
	for rows.Next() {
		var (
			k        Kit
			image    sql.NullString
			category string
		)
		if err := rows.Scan(
			&k.ID,
			&k.Name,
			&k.Description,
			&category,
			pq.Array(&k.Skus),
			&k.PriceArs,
			&k.DiscountPercent,
			&image,
			pq.Array(&k.Benefits),
		); err != nil {
			return nil, err
		}
		k.Category = Goal(category)
		if image.Valid {
			k.Image = image.String
		}
		out = append(out, k)
	}
	return out, rows.Err()
}
