package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnnouncementQuery parámetros de listado de anuncios vigentes.
// BusinessID 0 significa "no enviado": el caso de uso decide si es requerido.
type AnnouncementQuery struct {
	BusinessID int64
	Type       string
	Category   string
	Limit      int
}

// AnnouncementListResponse lista ordenada de anuncios vigentes.
type AnnouncementListResponse struct {
	Items []AnnouncementView `json:"items"`
	Count int                `json:"count"`
}

// AnnouncementView proyección pública de un anuncio vigente.
type AnnouncementView struct {
	ID            int64          `json:"id"`
	BusinessID    int64          `json:"business_id"`
	Title         string         `json:"title"`
	Content       string         `json:"content,omitempty"`
	ImageURL      string         `json:"image_url,omitempty"`
	BackgroundURL string         `json:"background_url,omitempty"`
	Type          string         `json:"type"`
	Category      string         `json:"category,omitempty"`
	Priority      int            `json:"priority"`
	Button        *ButtonView    `json:"button,omitempty"`
	Discount      *DiscountView  `json:"discount,omitempty"`
	Campaign      *CampaignView  `json:"campaign,omitempty"`
	Period        PeriodView     `json:"period"`
	TimeRemaining *CountdownView `json:"time_remaining,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ButtonView llamado a la acción del anuncio.
type ButtonView struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// DiscountView bloque de descuento; solo presente cuando discount_type existe.
type DiscountView struct {
	Type  string          `json:"type"` // percentage | amount
	Value decimal.Decimal `json:"value"`
}

// CampaignView bloque de campaña; solo presente cuando type == campaign.
type CampaignView struct {
	Condition string `json:"condition,omitempty"`
	Reward    string `json:"reward,omitempty"`
}

// PeriodView eco de la ventana de vigencia evaluada.
type PeriodView struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// CountdownView cuenta regresiva hacia countdown_date.
type CountdownView struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}
