package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/schedule"
)

const (
	defaultAnnouncementLimit = 20
	maxAnnouncementLimit     = 100
)

// AnnouncementUseCase selecciona los anuncios vigentes de un negocio:
// filtro temporal duro, filtros de tipo/categoría de layout, orden por
// prioridad y antigüedad, y proyección con cuenta regresiva derivada.
// El instante "now" siempre llega del caller; aquí nadie lee el reloj.
type AnnouncementUseCase struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementUseCase construye el caso de uso.
func NewAnnouncementUseCase(repo repository.AnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo}
}

// Active lista los anuncios vigentes del negocio. El tenant es dimensión
// obligatoria: BusinessID 0 → ErrBusinessIDRequired. Un tipo fuera del
// conjunto enumerado → ErrInvalidInput.
func (uc *AnnouncementUseCase) Active(ctx context.Context, q dto.AnnouncementQuery, now time.Time) (*dto.AnnouncementListResponse, error) {
	if q.BusinessID == 0 {
		return nil, domain.ErrBusinessIDRequired
	}
	if q.Type != "" && !entity.ValidAnnouncementType(q.Type) {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.repo.ListActive(ctx, q.BusinessID, q.Type)
	if err != nil {
		return nil, err
	}

	valid := filterValid(rows, now)
	if q.Category != "" {
		kept := valid[:0]
		for _, a := range valid {
			if a.Category == q.Category {
				kept = append(kept, a)
			}
		}
		valid = kept
	}

	return project(valid, now, q.Limit), nil
}

// Get devuelve un anuncio publicado por id. Id desconocido o anuncio
// despublicado → ErrAnnouncementNotFound; la ventana temporal no oculta el
// recurso en el acceso directo, solo se refleja en period.is_active.
func (uc *AnnouncementUseCase) Get(ctx context.Context, id int64, now time.Time) (*dto.AnnouncementView, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.IsActive {
		return nil, domain.ErrAnnouncementNotFound
	}
	view := toAnnouncementView(*a, now)
	return &view, nil
}

// Promotions variante por tipo promotion. businessID es filtro opcional
// (0 = todos los negocios).
func (uc *AnnouncementUseCase) Promotions(ctx context.Context, businessID int64, now time.Time) (*dto.AnnouncementListResponse, error) {
	rows, err := uc.repo.ListActive(ctx, businessID, entity.AnnouncementPromotion)
	if err != nil {
		return nil, err
	}
	return project(filterValid(rows, now), now, 0), nil
}

// Campaigns variante por tipo campaign; aquí el tenant sí es obligatorio.
func (uc *AnnouncementUseCase) Campaigns(ctx context.Context, businessID int64, now time.Time) (*dto.AnnouncementListResponse, error) {
	if businessID == 0 {
		return nil, domain.ErrBusinessIDRequired
	}
	rows, err := uc.repo.ListActive(ctx, businessID, entity.AnnouncementCampaign)
	if err != nil {
		return nil, err
	}
	return project(filterValid(rows, now), now, 0), nil
}

// WithCountdown anuncios vigentes con un objetivo de cuenta regresiva aún
// futuro. businessID es filtro opcional.
func (uc *AnnouncementUseCase) WithCountdown(ctx context.Context, businessID int64, now time.Time) (*dto.AnnouncementListResponse, error) {
	rows, err := uc.repo.ListActive(ctx, businessID, "")
	if err != nil {
		return nil, err
	}
	valid := filterValid(rows, now)
	kept := valid[:0]
	for _, a := range valid {
		if a.CountdownDate != nil && !schedule.Remaining(now, *a.CountdownDate).Expired {
			kept = append(kept, a)
		}
	}
	return project(kept, now, 0), nil
}

// ForProduct anuncios vigentes aplicables a un producto: ámbito sin
// restricción (NULL en storage) o que contiene el id. Un array vacío no
// aplica a nada.
func (uc *AnnouncementUseCase) ForProduct(ctx context.Context, productID, businessID int64, now time.Time) (*dto.AnnouncementListResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.scoped(ctx, businessID, now, func(a entity.Announcement) bool {
		return a.ProductScope.Matches(productID)
	})
}

// ForCategory anuncios vigentes aplicables a una categoría de producto.
func (uc *AnnouncementUseCase) ForCategory(ctx context.Context, categoryID, businessID int64, now time.Time) (*dto.AnnouncementListResponse, error) {
	if categoryID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.scoped(ctx, businessID, now, func(a entity.Announcement) bool {
		return a.CategoryScope.Matches(categoryID)
	})
}

func (uc *AnnouncementUseCase) scoped(ctx context.Context, businessID int64, now time.Time, match func(entity.Announcement) bool) (*dto.AnnouncementListResponse, error) {
	rows, err := uc.repo.ListActive(ctx, businessID, "")
	if err != nil {
		return nil, err
	}
	valid := filterValid(rows, now)
	kept := valid[:0]
	for _, a := range valid {
		if match(a) {
			kept = append(kept, a)
		}
	}
	return project(kept, now, 0), nil
}

// filterValid aplica la ventana temporal como filtro duro: fuera de ventana
// se excluye, no se desprioriza. Ventanas invertidas quedan fuera por la
// misma regla.
func filterValid(rows []entity.Announcement, now time.Time) []entity.Announcement {
	out := make([]entity.Announcement, 0, len(rows))
	for _, a := range rows {
		if !schedule.IsActive(now, a.StartDate, a.EndDate) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// project ordena (prioridad DESC, created_at DESC), trunca al límite y
// proyecta las vistas.
func project(rows []entity.Announcement, now time.Time, limit int) *dto.AnnouncementListResponse {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Priority != rows[j].Priority {
			return rows[i].Priority > rows[j].Priority
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	if limit <= 0 {
		limit = defaultAnnouncementLimit
	}
	if limit > maxAnnouncementLimit {
		limit = maxAnnouncementLimit
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}

	items := make([]dto.AnnouncementView, 0, len(rows))
	for _, a := range rows {
		items = append(items, toAnnouncementView(a, now))
	}
	return &dto.AnnouncementListResponse{Items: items, Count: len(items)}
}

func toAnnouncementView(a entity.Announcement, now time.Time) dto.AnnouncementView {
	view := dto.AnnouncementView{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		Title:         a.Title,
		Content:       a.Content,
		ImageURL:      a.ImageURL,
		BackgroundURL: a.BackgroundURL,
		Type:          a.Type,
		Category:      a.Category,
		Priority:      a.Priority,
		CreatedAt:     a.CreatedAt,
		Period: dto.PeriodView{
			StartDate: a.StartDate,
			EndDate:   a.EndDate,
			IsActive:  schedule.IsActive(now, a.StartDate, a.EndDate),
		},
	}
	if a.ButtonText != "" {
		view.Button = &dto.ButtonView{Text: a.ButtonText, URL: a.ButtonURL}
	}
	if a.HasDiscount() {
		view.Discount = &dto.DiscountView{Type: a.DiscountType, Value: a.DiscountValue}
	}
	if a.Type == entity.AnnouncementCampaign {
		view.Campaign = &dto.CampaignView{Condition: a.CampaignCondition, Reward: a.CampaignReward}
	}
	if a.CountdownDate != nil {
		if cd := schedule.Remaining(now, *a.CountdownDate); !cd.Expired {
			view.TimeRemaining = &dto.CountdownView{
				Days:    cd.Days,
				Hours:   cd.Hours,
				Minutes: cd.Minutes,
				Seconds: cd.Seconds,
			}
		}
	}
	return view
}
