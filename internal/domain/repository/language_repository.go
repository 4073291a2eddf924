package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// LanguageRepository define el puerto de lectura para Language (DIP).
type LanguageRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Language, error)
	// ListByCurrency devuelve los idiomas cuya moneda por defecto es la dada.
	ListByCurrency(ctx context.Context, currencyCode string) ([]entity.Language, error)
}

// CurrencyRepository define el puerto de lectura para Currency (DIP).
// Solo expone monedas activas: una moneda desactivada no existe para este núcleo.
type CurrencyRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*entity.Currency, error)
	ListActive(ctx context.Context) ([]entity.Currency, error)
}
