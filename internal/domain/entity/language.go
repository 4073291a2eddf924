package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Language idioma soportado por el despliegue. Exactamente uno debe tener
// IsDefault=true (invariante mantenido por el CRUD, no por este núcleo).
type Language struct {
	Code                string // ISO 639-1, ej. "tr", "en"
	Name                string
	NativeName          string
	IsDefault           bool
	Direction           string // ltr | rtl
	DefaultCurrencyCode string
}

// Currency moneda con tasa pivote contra USD. RateToUSD debe ser > 0;
// una tasa no positiva invalida cualquier conversión que la use.
type Currency struct {
	Code      string // ISO 4217, ej. "USD"
	Symbol    string
	Name      string
	RateToUSD decimal.Decimal
	IsActive  bool
	UpdatedAt time.Time
}
