package postgres

import (
	"context"
	"fmt"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las asociaciones se cargan en bloque por negocio para evitar N+1 al armar
// el menú.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListAvailableByBusiness lista productos activos y disponibles del negocio.
func (r *ProductRepo) ListAvailableByBusiness(ctx context.Context, businessID int64) ([]entity.Product, error) {
	query := `
		SELECT id, business_id, category_id, name, description, allergens, price, currency_code,
		       image_url, sira_id, is_active, is_available, calories, carbs, protein, fat,
		       created_at, updated_at
		FROM products WHERE business_id = $1 AND is_active = true AND is_available = true`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.CategoryID, &p.Name, &p.Description,
			&p.Allergens, &p.Price, &p.CurrencyCode, &p.ImageURL, &p.SiraID,
			&p.IsActive, &p.IsAvailable, &p.Calories, &p.Carbs, &p.Protein, &p.Fat,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// LabelsByProduct etiquetas por producto del negocio (solo activas).
func (r *ProductRepo) LabelsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Label, error) {
	query := `
		SELECT pl.product_id, l.id, l.business_id, l.name, l.description, l.color, l.is_active
		FROM product_labels pl
		JOIN labels l ON l.id = pl.label_id
		WHERE l.business_id = $1 AND l.is_active = true`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list product labels: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.Label)
	for rows.Next() {
		var productID int64
		var l entity.Label
		if err := rows.Scan(&productID, &l.ID, &l.BusinessID, &l.Name, &l.Description, &l.Color, &l.IsActive); err != nil {
			return nil, fmt.Errorf("scan product label: %w", err)
		}
		out[productID] = append(out[productID], l)
	}
	return out, rows.Err()
}

// PortionsByProduct porciones por producto del negocio.
func (r *ProductRepo) PortionsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Portion, error) {
	query := `
		SELECT po.id, po.product_id, po.name, po.price, po.sira_id
		FROM portions po
		JOIN products p ON p.id = po.product_id
		WHERE p.business_id = $1
		ORDER BY po.sira_id ASC NULLS LAST, po.id ASC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list portions: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.Portion)
	for rows.Next() {
		var po entity.Portion
		if err := rows.Scan(&po.ID, &po.ProductID, &po.Name, &po.Price, &po.SiraID); err != nil {
			return nil, fmt.Errorf("scan portion: %w", err)
		}
		out[po.ProductID] = append(out[po.ProductID], po)
	}
	return out, rows.Err()
}

// IngredientsByProduct ingredientes por producto del negocio.
func (r *ProductRepo) IngredientsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Ingredient, error) {
	query := `
		SELECT i.id, i.product_id, i.name, i.is_allergen
		FROM ingredients i
		JOIN products p ON p.id = i.product_id
		WHERE p.business_id = $1
		ORDER BY i.id ASC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.Ingredient)
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.ProductID, &ing.Name, &ing.IsAllergen); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out[ing.ProductID] = append(out[ing.ProductID], ing)
	}
	return out, rows.Err()
}

// Recommendations enlaces de recomendación del negocio. La validez del
// destino (activo y disponible) la resuelve el caso de uso contra la lista
// ya filtrada de productos.
func (r *ProductRepo) Recommendations(ctx context.Context, businessID int64) ([]entity.RecommendedProduct, error) {
	query := `
		SELECT rp.id, rp.product_id, rp.recommended_product_id
		FROM recommended_products rp
		JOIN products p ON p.id = rp.product_id
		WHERE p.business_id = $1`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var list []entity.RecommendedProduct
	for rows.Next() {
		var rec entity.RecommendedProduct
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.RecommendedProductID); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
