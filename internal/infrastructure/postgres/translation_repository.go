package postgres

import (
	"context"
	"fmt"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

var _ repository.TranslationRepository = (*TranslationRepo)(nil)

// TranslationRepo implementación del puerto TranslationRepository sobre
// PostgreSQL. Una sola consulta por entidad y por idioma: la asociación es
// explícita, nunca eager-loading implícito del ORM.
type TranslationRepo struct {
	q Querier
}

// NewTranslationRepository construye el adaptador de lectura para traducciones.
func NewTranslationRepository(q Querier) *TranslationRepo {
	return &TranslationRepo{q: q}
}

// CategoryTranslations traducciones de categoría del negocio para un idioma,
// indexadas por category_id. Mapa vacío (no error) cuando el idioma no tiene filas.
func (r *TranslationRepo) CategoryTranslations(ctx context.Context, businessID int64, languageCode string) (map[int64]entity.CategoryTranslation, error) {
	query := `
		SELECT ct.id, ct.category_id, ct.language_code, ct.name, ct.description
		FROM category_translations ct
		JOIN categories c ON c.id = ct.category_id
		WHERE c.business_id = $1 AND ct.language_code = $2`
	rows, err := r.q.Query(ctx, query, businessID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("list category translations: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]entity.CategoryTranslation)
	for rows.Next() {
		var tr entity.CategoryTranslation
		if err := rows.Scan(&tr.ID, &tr.CategoryID, &tr.LanguageCode, &tr.Name, &tr.Description); err != nil {
			return nil, fmt.Errorf("scan category translation: %w", err)
		}
		out[tr.CategoryID] = tr
	}
	return out, rows.Err()
}

// ProductTranslations traducciones de producto del negocio para un idioma,
// indexadas por product_id.
func (r *TranslationRepo) ProductTranslations(ctx context.Context, businessID int64, languageCode string) (map[int64]entity.ProductTranslation, error) {
	query := `
		SELECT pt.id, pt.product_id, pt.language_code, pt.name, pt.description, pt.allergens
		FROM product_translations pt
		JOIN products p ON p.id = pt.product_id
		WHERE p.business_id = $1 AND pt.language_code = $2`
	rows, err := r.q.Query(ctx, query, businessID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("list product translations: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]entity.ProductTranslation)
	for rows.Next() {
		var tr entity.ProductTranslation
		if err := rows.Scan(&tr.ID, &tr.ProductID, &tr.LanguageCode, &tr.Name, &tr.Description, &tr.Allergens); err != nil {
			return nil, fmt.Errorf("scan product translation: %w", err)
		}
		out[tr.ProductID] = tr
	}
	return out, rows.Err()
}
