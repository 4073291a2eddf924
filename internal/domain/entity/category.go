package entity

import "time"

// Category categoría del catálogo de un Business. SiraID define el orden de
// exhibición (nil = sin orden asignado, se lista al final).
type Category struct {
	ID          int64
	BusinessID  int64
	ParentID    *int64 // nil si es raíz; el menú la lista plana con etiqueta de padre opcional
	Name        string // nombre canónico (idioma por defecto del negocio)
	Description string
	ImageURL    string
	SiraID      *int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryTranslation traducción de una categoría para un idioma.
// Única por (category_id, language_code); los campos vacíos caen al canónico.
type CategoryTranslation struct {
	ID           int64
	CategoryID   int64
	LanguageCode string
	Name         string
	Description  string
}
