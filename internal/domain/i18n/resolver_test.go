package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/i18n"
)

func product() entity.Product {
	return entity.Product{
		ID:          7,
		Name:        "Mercimek Çorbası",
		Description: "Geleneksel kırmızı mercimek çorbası",
		Allergens:   "gluten",
	}
}

// Sin fila de traducción: los tres campos canónicos pasan sin cambios.
func TestResolveProduct_SinTraduccion(t *testing.T) {
	got := i18n.ResolveProduct(product(), nil)

	assert.Equal(t, "Mercimek Çorbası", got.Name)
	assert.Equal(t, "Geleneksel kırmızı mercimek çorbası", got.Description)
	assert.Equal(t, "gluten", got.Allergens)
}

func TestResolveProduct_TraduccionCompleta(t *testing.T) {
	tr := &entity.ProductTranslation{
		ProductID:    7,
		LanguageCode: "en",
		Name:         "Lentil Soup",
		Description:  "Traditional red lentil soup",
		Allergens:    "gluten (wheat)",
	}

	got := i18n.ResolveProduct(product(), tr)

	assert.Equal(t, "Lentil Soup", got.Name)
	assert.Equal(t, "Traditional red lentil soup", got.Description)
	assert.Equal(t, "gluten (wheat)", got.Allergens)
}

// Traducción parcial: nombre traducido + descripción canónica. Una fila con
// campos vacíos es legal y cae campo a campo, no fila completa.
func TestResolveProduct_TraduccionParcial(t *testing.T) {
	tr := &entity.ProductTranslation{
		ProductID:    7,
		LanguageCode: "en",
		Name:         "Lentil Soup",
	}

	got := i18n.ResolveProduct(product(), tr)

	assert.Equal(t, "Lentil Soup", got.Name, "el nombre traducido debe usarse")
	assert.Equal(t, "Geleneksel kırmızı mercimek çorbası", got.Description,
		"la descripción ausente cae al canónico")
	assert.Equal(t, "gluten", got.Allergens, "los alérgenos ausentes caen al canónico")
}

func TestResolveCategory_Fallback(t *testing.T) {
	cat := entity.Category{ID: 10, Name: "Starters", Description: "Hafif başlangıçlar"}

	got := i18n.ResolveCategory(cat, nil)
	assert.Equal(t, "Starters", got.Name)

	got = i18n.ResolveCategory(cat, &entity.CategoryTranslation{LanguageCode: "de", Name: "Vorspeisen"})
	assert.Equal(t, "Vorspeisen", got.Name)
	assert.Equal(t, "Hafif başlangıçlar", got.Description)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", i18n.Normalize("EN"))
	assert.Equal(t, "tr", i18n.Normalize("tr-TR"))
	assert.Equal(t, "es", i18n.Normalize(" es "))
}

func TestSupported(t *testing.T) {
	for _, code := range []string{"tr", "en", "de", "fr", "es", "ar", "ru"} {
		assert.True(t, i18n.Supported(code), "%s debe estar soportado", code)
	}
	assert.False(t, i18n.Supported("it"))
	assert.False(t, i18n.Supported(""))
}
