package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// TranslationRepository define el puerto de lectura para traducciones (DIP).
// Devuelve mapas entityID -> fila de traducción para el idioma pedido; la
// ausencia de una clave es el caso normal de fallback, no un error.
type TranslationRepository interface {
	CategoryTranslations(ctx context.Context, businessID int64, languageCode string) (map[int64]entity.CategoryTranslation, error)
	ProductTranslations(ctx context.Context, businessID int64, languageCode string) (map[int64]entity.ProductTranslation, error)
}
