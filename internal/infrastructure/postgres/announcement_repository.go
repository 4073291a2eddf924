package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementación del puerto AnnouncementRepository sobre
// PostgreSQL. Los arrays de aplicabilidad son bigint[] nullables: NULL se
// traduce al ámbito comodín, un array (aun vacío) al ámbito restringido.
type AnnouncementRepo struct {
	q Querier
}

// NewAnnouncementRepository construye el adaptador de lectura para anuncios.
func NewAnnouncementRepository(q Querier) *AnnouncementRepo {
	return &AnnouncementRepo{q: q}
}

const announcementColumns = `
	id, business_id, title, content, image_url, background_url, type, category,
	priority, is_active, start_date, end_date, countdown_date,
	discount_type, discount_value, applicable_products, applicable_categories,
	campaign_condition, campaign_reward, button_text, button_url,
	created_at, updated_at`

// ListActive anuncios con is_active=true. businessID 0 no filtra por negocio,
// annType vacío no filtra por tipo. El filtro temporal es del caso de uso.
func (r *AnnouncementRepo) ListActive(ctx context.Context, businessID int64, annType string) ([]entity.Announcement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + announcementColumns + ` FROM announcements WHERE is_active = true`)
	args := make([]any, 0, 2)
	if businessID != 0 {
		args = append(args, businessID)
		fmt.Fprintf(&sb, " AND business_id = $%d", len(args))
	}
	if annType != "" {
		args = append(args, annType)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var list []entity.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetByID obtiene un anuncio por ID sin filtrar por is_active: esa decisión
// es del caso de uso. (nil, nil) si no existe.
func (r *AnnouncementRepo) GetByID(ctx context.Context, id int64) (*entity.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`
	a, err := scanAnnouncement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func scanAnnouncement(row pgx.Row) (entity.Announcement, error) {
	var (
		a                 entity.Announcement
		discountType      *string
		discountValue     *decimal.Decimal
		products          *[]int64
		categories        *[]int64
		campaignCondition *string
		campaignReward    *string
		buttonText        *string
		buttonURL         *string
	)
	err := row.Scan(
		&a.ID, &a.BusinessID, &a.Title, &a.Content, &a.ImageURL, &a.BackgroundURL,
		&a.Type, &a.Category, &a.Priority, &a.IsActive,
		&a.StartDate, &a.EndDate, &a.CountdownDate,
		&discountType, &discountValue, &products, &categories,
		&campaignCondition, &campaignReward, &buttonText, &buttonURL,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Announcement{}, err
		}
		return entity.Announcement{}, fmt.Errorf("scan announcement: %w", err)
	}

	a.DiscountType = deref(discountType)
	if discountValue != nil {
		a.DiscountValue = *discountValue
	}
	a.CampaignCondition = deref(campaignCondition)
	a.CampaignReward = deref(campaignReward)
	a.ButtonText = deref(buttonText)
	a.ButtonURL = deref(buttonURL)
	a.ProductScope = toScope(products)
	a.CategoryScope = toScope(categories)
	return a, nil
}

// toScope traduce el array nullable de storage a la variante explícita:
// NULL -> aplica a todo; array (aun vacío) -> solo los ids listados.
func toScope(ids *[]int64) entity.Scope {
	if ids == nil {
		return entity.ScopeAll()
	}
	return entity.ScopeOf(*ids...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
