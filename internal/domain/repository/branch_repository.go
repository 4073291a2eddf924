package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// BranchRepository define el puerto de lectura para Branch (DIP).
// Devuelve (nil, nil) cuando la sucursal no existe.
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Branch, error)
}
