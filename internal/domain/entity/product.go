package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Price se almacena en la moneda configurada
// por el negocio (CurrencyCode); el menú la reporta tal cual, sin convertir.
type Product struct {
	ID           int64
	BusinessID   int64
	CategoryID   int64
	Name         string // nombre canónico (idioma por defecto del negocio)
	Description  string
	Allergens    string
	Price        decimal.Decimal
	CurrencyCode string
	ImageURL     string
	SiraID       *int
	IsActive     bool
	IsAvailable  bool
	Calories     *int
	Carbs        *int
	Protein      *int
	Fat          *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductTranslation traducción de un producto para un idioma.
// Única por (product_id, language_code); traducciones parciales son legales.
type ProductTranslation struct {
	ID           int64
	ProductID    int64
	LanguageCode string
	Name         string
	Description  string
	Allergens    string
}

// Portion porción/tamaño de un producto con su propio precio.
type Portion struct {
	ID        int64
	ProductID int64
	Name      string
	Price     decimal.Decimal
	SiraID    *int
}

// Ingredient ingrediente de un producto.
type Ingredient struct {
	ID         int64
	ProductID  int64
	Name       string
	IsAllergen bool
}

// RecommendedProduct enlace de recomendación entre productos. El agregador
// descarta en silencio los enlaces cuyo destino no está activo y disponible.
type RecommendedProduct struct {
	ID                   int64
	ProductID            int64
	RecommendedProductID int64
}

// Label etiqueta asociable a productos (ej. "vegetariano").
type Label struct {
	ID          int64
	BusinessID  int64
	Name        string
	Description string
	Color       string
	IsActive    bool
}
