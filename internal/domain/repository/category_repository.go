package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para Category (DIP).
type CategoryRepository interface {
	// ListActiveByBusiness devuelve las categorías activas del negocio,
	// sin garantía de orden: el ordenamiento es responsabilidad del caso de uso.
	ListActiveByBusiness(ctx context.Context, businessID int64) ([]entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
}
