package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para Product y sus
// asociaciones (DIP). Los métodos *ByProduct cargan en bloque por negocio
// para evitar N+1 en la agregación del menú.
type ProductRepository interface {
	// ListAvailableByBusiness devuelve los productos activos y disponibles del negocio.
	ListAvailableByBusiness(ctx context.Context, businessID int64) ([]entity.Product, error)
	LabelsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Label, error)
	PortionsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Portion, error)
	IngredientsByProduct(ctx context.Context, businessID int64) (map[int64][]entity.Ingredient, error)
	Recommendations(ctx context.Context, businessID int64) ([]entity.RecommendedProduct, error)
}
