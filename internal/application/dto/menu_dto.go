package dto

import "github.com/shopspring/decimal"

// MenuResponse documento de menú localizado para una sucursal.
// Currency es la moneda preferida de exhibición del idioma pedido; los
// precios por producto se reportan en la moneda almacenada, sin conversión.
type MenuResponse struct {
	Branch     BranchView         `json:"branch"`
	Language   string             `json:"language"`
	Currency   CurrencyDescriptor `json:"currency"`
	Categories []MenuCategory     `json:"categories"`
}

// BranchView datos de la sucursal en el documento de menú.
type BranchView struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
}

// CategoryListResponse solo las categorías localizadas de una sucursal.
type CategoryListResponse struct {
	Branch     BranchView     `json:"branch"`
	Language   string         `json:"language"`
	Categories []MenuCategory `json:"categories"`
}

// MenuCategory categoría localizada con sus productos ordenados.
type MenuCategory struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	ImageURL     string        `json:"image_url,omitempty"`
	ParentID     *int64        `json:"parent_id,omitempty"`
	DisplayOrder *int          `json:"display_order,omitempty"`
	Products     []MenuProduct `json:"products,omitempty"`
}

// MenuProduct producto localizado del menú.
type MenuProduct struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Allergens    string            `json:"allergens,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	CurrencyCode string            `json:"currency_code"`
	ImageURL     string            `json:"image_url,omitempty"`
	DisplayOrder *int              `json:"display_order,omitempty"`
	Nutrition    *NutritionView    `json:"nutrition,omitempty"`
	Labels       []LabelView       `json:"labels,omitempty"`
	Portions     []PortionView     `json:"portions,omitempty"`
	Ingredients  []IngredientView  `json:"ingredients,omitempty"`
	Recommended  []RecommendedView `json:"recommended,omitempty"`
}

// NutritionView campos nutricionales opcionales.
type NutritionView struct {
	Calories *int `json:"calories,omitempty"`
	Carbs    *int `json:"carbs,omitempty"`
	Protein  *int `json:"protein,omitempty"`
	Fat      *int `json:"fat,omitempty"`
}

// LabelView etiqueta activa de un producto.
type LabelView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// PortionView porción de un producto con su precio.
type PortionView struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// IngredientView ingrediente de un producto.
type IngredientView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsAllergen bool   `json:"is_allergen"`
}

// RecommendedView producto recomendado (solo destinos activos y disponibles).
type RecommendedView struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code"`
	ImageURL     string          `json:"image_url,omitempty"`
}
