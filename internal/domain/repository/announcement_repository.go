package repository

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// AnnouncementRepository define el puerto de lectura para Announcement (DIP).
type AnnouncementRepository interface {
	// ListActive devuelve anuncios con is_active=true. businessID 0 lista
	// todos los negocios (variantes públicas por tipo); annType vacío no
	// filtra por tipo. El filtro temporal es del caso de uso, no del storage.
	ListActive(ctx context.Context, businessID int64, annType string) ([]entity.Announcement, error)
	GetByID(ctx context.Context, id int64) (*entity.Announcement, error)
}
