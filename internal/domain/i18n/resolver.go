// Package i18n resuelve los textos de exhibición de entidades localizables.
//
// La resolución es una función pura sobre datos ya cargados: la fila de
// traducción (si existe) se obtiene por repositorio explícito, nunca por
// eager-loading implícito, para que el fallback sea testeable sin base de datos.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// SupportedLanguages conjunto cerrado de códigos aceptados por la API pública.
var SupportedLanguages = []string{"tr", "en", "de", "fr", "es", "ar", "ru"}

// Localized textos de exhibición ya resueltos para un idioma.
type Localized struct {
	Name        string
	Description string
	Allergens   string
}

// ResolveCategory resuelve los textos de una categoría. tr es la fila de
// traducción para el idioma pedido, o nil si no existe (caso normal, no error).
// Cada campo vacío en la traducción cae al canónico: traducciones parciales
// son legales.
func ResolveCategory(cat entity.Category, tr *entity.CategoryTranslation) Localized {
	out := Localized{Name: cat.Name, Description: cat.Description}
	if tr == nil {
		return out
	}
	if tr.Name != "" {
		out.Name = tr.Name
	}
	if tr.Description != "" {
		out.Description = tr.Description
	}
	return out
}

// ResolveProduct resuelve los textos de un producto con el mismo fallback
// campo a campo que ResolveCategory.
func ResolveProduct(p entity.Product, tr *entity.ProductTranslation) Localized {
	out := Localized{Name: p.Name, Description: p.Description, Allergens: p.Allergens}
	if tr == nil {
		return out
	}
	if tr.Name != "" {
		out.Name = tr.Name
	}
	if tr.Description != "" {
		out.Description = tr.Description
	}
	if tr.Allergens != "" {
		out.Allergens = tr.Allergens
	}
	return out
}

// Normalize canonicaliza un código de idioma entrante ("EN", "tr-TR" -> "en", "tr").
// Un código imposible de parsear se devuelve en minúsculas tal cual; la
// validación contra el conjunto soportado es de Supported, no de aquí.
func Normalize(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(code))
	}
	base, _ := tag.Base()
	return base.String()
}

// Supported indica si el código (ya normalizado) pertenece al conjunto aceptado.
func Supported(code string) bool {
	for _, s := range SupportedLanguages {
		if s == code {
			return true
		}
	}
	return false
}
