// Package money implementa la conversión de montos entre monedas vía USD
// como pivote. Aritmética exclusivamente decimal: float64 nunca toca dinero.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
)

// ResultPrecision decimales del resultado numérico (consumo máquina).
// El redondeo de exhibición (2 decimales) es un paso aparte del caller.
const ResultPrecision = 6

// Convert convierte amount de una moneda a otra usando las tasas contra USD:
//
//	usd = amount / fromRate
//	result = usd * toRate
//
// redondeado a ResultPrecision decimales. Rechaza montos negativos
// (ErrInvalidAmount) y tasas no positivas (ErrInvalidRate): una tasa <= 0
// haría la conversión indefinida y jamás debe producir NaN/Inf silencioso.
func Convert(amount, fromRate, toRate decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, domain.ErrInvalidRate
	}
	usd := amount.Div(fromRate)
	return usd.Mul(toRate).Round(ResultPrecision), nil
}

// PairRate devuelve la tasa efectiva par a par: toRate / fromRate.
func PairRate(fromRate, toRate decimal.Decimal) (decimal.Decimal, error) {
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, domain.ErrInvalidRate
	}
	return toRate.Div(fromRate).Round(ResultPrecision), nil
}
