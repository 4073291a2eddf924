package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de anuncio.
const (
	AnnouncementGeneral   = "general"
	AnnouncementPromotion = "promotion"
	AnnouncementCampaign  = "campaign"
	AnnouncementDiscount  = "discount"
)

// Tipos de descuento.
const (
	DiscountPercentage = "percentage"
	DiscountAmount     = "amount"
)

// ValidAnnouncementType indica si el tipo pertenece al conjunto enumerado.
func ValidAnnouncementType(t string) bool {
	switch t {
	case AnnouncementGeneral, AnnouncementPromotion, AnnouncementCampaign, AnnouncementDiscount:
		return true
	}
	return false
}

// Announcement anuncio promocional de un Business. StartDate/EndDate nil
// significan ventana abierta por ese lado; CountdownDate es un objetivo de
// cuenta regresiva independiente de la ventana de vigencia.
type Announcement struct {
	ID                 int64
	BusinessID         int64
	Title              string
	Content            string
	ImageURL           string
	BackgroundURL      string
	Type               string // general | promotion | campaign | discount
	Category           string // etiqueta de layout de UI, no una categoría de producto
	Priority           int    // mayor = se muestra primero
	IsActive           bool
	StartDate          *time.Time
	EndDate            *time.Time
	CountdownDate      *time.Time
	DiscountType       string // percentage | amount; vacío = sin descuento
	DiscountValue      decimal.Decimal
	ProductScope       Scope // productos a los que aplica
	CategoryScope      Scope // categorías a las que aplica
	CampaignCondition  string
	CampaignReward     string
	ButtonText         string
	ButtonURL          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasDiscount indica si el anuncio lleva un bloque de descuento.
func (a Announcement) HasDiscount() bool {
	return a.DiscountType != ""
}
