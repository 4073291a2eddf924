package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyDescriptor moneda de exhibición resuelta para un idioma.
type CurrencyDescriptor struct {
	Code      string          `json:"code"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	RateToUSD decimal.Decimal `json:"rate_to_usd"`
}

// CurrencyView salida de una moneda del catálogo.
type CurrencyView struct {
	Code      string          `json:"code"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	RateToUSD decimal.Decimal `json:"rate_to_usd"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CurrencyListResponse lista de monedas activas.
type CurrencyListResponse struct {
	Items []CurrencyView `json:"items"`
	Count int            `json:"count"`
}

// LanguageView salida de un idioma soportado.
type LanguageView struct {
	Code                string `json:"code"`
	Name                string `json:"name"`
	NativeName          string `json:"native_name"`
	IsDefault           bool   `json:"is_default"`
	Direction           string `json:"direction"`
	DefaultCurrencyCode string `json:"default_currency_code"`
}

// CurrencyDetailResponse una moneda junto con los idiomas que la usan por defecto.
type CurrencyDetailResponse struct {
	Currency  CurrencyView   `json:"currency"`
	Languages []LanguageView `json:"languages"`
}

// ConversionResponse resultado de una conversión vía USD como pivote.
// Converted viene redondeado a 6 decimales (consumo máquina); el redondeo de
// exhibición es responsabilidad del cliente.
type ConversionResponse struct {
	Amount    decimal.Decimal    `json:"amount"`
	Converted decimal.Decimal    `json:"converted"`
	Rate      decimal.Decimal    `json:"rate"`
	From      CurrencyDescriptor `json:"from"`
	To        CurrencyDescriptor `json:"to"`
}
