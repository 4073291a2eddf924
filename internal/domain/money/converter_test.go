package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de conversión vía USD como pivote:
//
//	usd    = amount / rate_to_usd(from)
//	result = usd * rate_to_usd(to)
//
// Vector de referencia: convert(100, EUR, TRY) con rate(EUR)=1.08 y
// rate(TRY)=0.031 → 100/1.08*0.031 = 2.870370 (redondeado a 6 decimales).
// ──────────────────────────────────────────────────────────────────────────────

var (
	rateEUR = decimal.NewFromFloat(1.08)
	rateTRY = decimal.NewFromFloat(0.031)
	rateUSD = decimal.NewFromInt(1)
)

func TestConvert_VectorEURaTRY(t *testing.T) {
	got, err := money.Convert(decimal.NewFromInt(100), rateEUR, rateTRY)
	require.NoError(t, err)

	assert.True(t, got.Equal(decimal.RequireFromString("2.870370")),
		"100/1.08*0.031 debe redondear a 2.870370 en 6 decimales, dio %s", got)
}

func TestConvert_MismaMonedaEsIdentidad(t *testing.T) {
	amount := decimal.NewFromFloat(42.5)
	got, err := money.Convert(amount, rateEUR, rateEUR)
	require.NoError(t, err)
	assert.True(t, got.Equal(amount), "convertir a la misma moneda no altera el monto: %s", got)
}

// Ida y vuelta A→B→A debe recuperar el monto original dentro de 1e-6 relativo.
func TestConvert_IdaYVuelta(t *testing.T) {
	tolerance := decimal.NewFromFloat(1e-6)

	pairs := []struct{ from, to decimal.Decimal }{
		{rateEUR, rateTRY},
		{rateTRY, rateEUR},
		{rateEUR, rateUSD},
		{rateUSD, rateTRY},
	}
	amounts := []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.NewFromInt(100),
		decimal.NewFromFloat(99.99),
		decimal.NewFromFloat(0.5),
	}

	for _, p := range pairs {
		for _, x := range amounts {
			there, err := money.Convert(x, p.from, p.to)
			require.NoError(t, err)
			back, err := money.Convert(there, p.to, p.from)
			require.NoError(t, err)

			relErr := back.Sub(x).Abs().Div(x)
			assert.True(t, relErr.LessThanOrEqual(tolerance),
				"ida y vuelta de %s debe volver dentro de 1e-6 relativo, volvió %s", x, back)
		}
	}
}

func TestConvert_MontoCeroEsValido(t *testing.T) {
	got, err := money.Convert(decimal.Zero, rateEUR, rateTRY)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestConvert_MontoNegativoRechazado(t *testing.T) {
	_, err := money.Convert(decimal.NewFromInt(-1), rateEUR, rateTRY)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// rate_to_usd <= 0 invalida la conversión: debe rechazarse, nunca producir
// NaN/Inf silencioso.
func TestConvert_TasaNoPositivaRechazada(t *testing.T) {
	_, err := money.Convert(decimal.NewFromInt(10), decimal.Zero, rateTRY)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = money.Convert(decimal.NewFromInt(10), rateEUR, decimal.NewFromInt(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestPairRate(t *testing.T) {
	got, err := money.PairRate(rateEUR, rateTRY)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.028704")),
		"tasa par = rate(to)/rate(from) a 6 decimales, dio %s", got)

	_, err = money.PairRate(decimal.Zero, rateTRY)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}
