package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestActive_BusinessIDRequerido(t *testing.T) {
	uc := usecase.NewAnnouncementUseCase(&fakeAnnouncementRepo{})

	_, err := uc.Active(context.Background(), dto.AnnouncementQuery{}, now)
	assert.ErrorIs(t, err, domain.ErrBusinessIDRequired)
}

func TestActive_TipoInvalidoRechazado(t *testing.T) {
	uc := usecase.NewAnnouncementUseCase(&fakeAnnouncementRepo{})

	_, err := uc.Active(context.Background(), dto.AnnouncementQuery{BusinessID: 1, Type: "flash"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Orden: prioridad DESC, empates por created_at DESC (más nuevo primero).
// Con prioridades [5@t1, 5@t2, 10] el resultado es [10, 5@t2, 5@t1].
func TestActive_OrdenPorPrioridadYAntiguedad(t *testing.T) {
	t1 := now.Add(-3 * time.Hour)
	t2 := now.Add(-1 * time.Hour)
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementGeneral, Priority: 5, IsActive: true, CreatedAt: t1},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementGeneral, Priority: 5, IsActive: true, CreatedAt: t2},
		{ID: 3, BusinessID: 1, Type: entity.AnnouncementGeneral, Priority: 10, IsActive: true, CreatedAt: t1},
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	out, err := uc.Active(context.Background(), dto.AnnouncementQuery{BusinessID: 1}, now)
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, int64(3), out.Items[0].ID, "prioridad 10 primero")
	assert.Equal(t, int64(2), out.Items[1].ID, "empate de prioridad: el más nuevo antes")
	assert.Equal(t, int64(1), out.Items[2].ID)
}

// La ventana temporal es filtro duro: fuera de ventana queda excluido, no
// despriorizado. Ventana invertida cuenta como fuera de ventana.
func TestActive_FiltroTemporalDuro(t *testing.T) {
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			EndDate: timePtr(now.Add(-time.Hour))}, // ya venció
		{ID: 3, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			StartDate: timePtr(now.Add(time.Hour))}, // aún no empieza
		{ID: 4, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			StartDate: timePtr(now.Add(time.Hour)), EndDate: timePtr(now.Add(-time.Hour))}, // invertida
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	out, err := uc.Active(context.Background(), dto.AnnouncementQuery{BusinessID: 1}, now)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID)
}

func TestActive_LimiteYFiltroDeCategoria(t *testing.T) {
	rows := make([]entity.Announcement, 0, 30)
	for i := int64(1); i <= 30; i++ {
		rows = append(rows, entity.Announcement{
			ID: i, BusinessID: 1, Type: entity.AnnouncementGeneral,
			Category: "banner", Priority: int(i), IsActive: true, CreatedAt: now,
		})
	}
	rows = append(rows, entity.Announcement{
		ID: 99, BusinessID: 1, Type: entity.AnnouncementGeneral,
		Category: "popup", Priority: 1000, IsActive: true, CreatedAt: now,
	})
	uc := usecase.NewAnnouncementUseCase(&fakeAnnouncementRepo{rows: rows})

	out, err := uc.Active(context.Background(), dto.AnnouncementQuery{BusinessID: 1, Category: "banner", Limit: 5}, now)
	require.NoError(t, err)

	require.Len(t, out.Items, 5, "truncado al límite pedido")
	assert.Equal(t, int64(30), out.Items[0].ID, "mayor prioridad dentro de la categoría pedida")
}

// Proyección: el bloque discount solo aparece con discount_type presente, el
// bloque campaign solo con type == campaign, y time_remaining solo con un
// countdown_date futuro.
func TestActive_ProyeccionDeBloquesCondicionales(t *testing.T) {
	target := now.Add(90_061_000 * time.Millisecond) // 1d 1h 1m 1s
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementDiscount, Priority: 3, IsActive: true, CreatedAt: now,
			DiscountType: entity.DiscountPercentage, DiscountValue: decimal.NewFromInt(20)},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementCampaign, Priority: 2, IsActive: true, CreatedAt: now,
			CampaignCondition: "2 alana", CampaignReward: "1 bedava"},
		{ID: 3, BusinessID: 1, Type: entity.AnnouncementGeneral, Priority: 1, IsActive: true, CreatedAt: now,
			CountdownDate: timePtr(target)},
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	out, err := uc.Active(context.Background(), dto.AnnouncementQuery{BusinessID: 1}, now)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	discount := out.Items[0]
	require.NotNil(t, discount.Discount)
	assert.Equal(t, "percentage", discount.Discount.Type)
	assert.Nil(t, discount.Campaign)

	campaign := out.Items[1]
	require.NotNil(t, campaign.Campaign)
	assert.Equal(t, "1 bedava", campaign.Campaign.Reward)
	assert.Nil(t, campaign.Discount)

	countdown := out.Items[2]
	require.NotNil(t, countdown.TimeRemaining)
	assert.Equal(t, int64(1), countdown.TimeRemaining.Days)
	assert.Equal(t, int64(1), countdown.TimeRemaining.Hours)
	assert.Equal(t, int64(1), countdown.TimeRemaining.Minutes)
	assert.Equal(t, int64(1), countdown.TimeRemaining.Seconds)
	assert.True(t, countdown.Period.IsActive)
}

// Aplicabilidad: ámbito NULL (All) aplica a todo producto; [7] solo al 7;
// array vacío no aplica a nada.
func TestForProduct_AmbitoComodinYRestringido(t *testing.T) {
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementPromotion, IsActive: true, CreatedAt: now,
			ProductScope: entity.ScopeAll()},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementPromotion, IsActive: true, CreatedAt: now,
			ProductScope: entity.ScopeOf(7)},
		{ID: 3, BusinessID: 1, Type: entity.AnnouncementPromotion, IsActive: true, CreatedAt: now,
			ProductScope: entity.ScopeOf()}, // array vacío: no aplica a nada
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	out, err := uc.ForProduct(context.Background(), 7, 1, now)
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "comodín + ámbito que contiene el 7")

	out, err = uc.ForProduct(context.Background(), 8, 1, now)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "solo el comodín cubre al producto 8")
	assert.Equal(t, int64(1), out.Items[0].ID)

	_, err = uc.ForProduct(context.Background(), 0, 1, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaigns_RequiereBusinessID(t *testing.T) {
	uc := usecase.NewAnnouncementUseCase(&fakeAnnouncementRepo{})

	_, err := uc.Campaigns(context.Background(), 0, now)
	assert.ErrorIs(t, err, domain.ErrBusinessIDRequired)
}

func TestWithCountdown_SoloObjetivosFuturos(t *testing.T) {
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			CountdownDate: timePtr(now.Add(time.Hour))},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			CountdownDate: timePtr(now.Add(-time.Hour))}, // ya expiró
		{ID: 3, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now}, // sin countdown
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	out, err := uc.WithCountdown(context.Background(), 1, now)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID)
}

func TestGet_DespublicadoEsNotFound(t *testing.T) {
	repo := &fakeAnnouncementRepo{rows: []entity.Announcement{
		{ID: 1, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: false, CreatedAt: now},
		{ID: 2, BusinessID: 1, Type: entity.AnnouncementGeneral, IsActive: true, CreatedAt: now,
			EndDate: timePtr(now.Add(-time.Hour))},
	}}
	uc := usecase.NewAnnouncementUseCase(repo)

	_, err := uc.Get(context.Background(), 1, now)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)

	_, err = uc.Get(context.Background(), 99, now)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)

	// El acceso directo por id no oculta un anuncio fuera de ventana:
	// period.is_active lo refleja.
	view, err := uc.Get(context.Background(), 2, now)
	require.NoError(t, err)
	assert.False(t, view.Period.IsActive)
}
