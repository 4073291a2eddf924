package usecase

import (
	"context"
	"sort"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/i18n"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

// MenuUseCase arma el documento de menú localizado de una sucursal:
// categorías y productos ordenados, traducciones con fallback al canónico,
// asociaciones del producto y moneda de exhibición del idioma. Lectura pura,
// sin efectos secundarios.
type MenuUseCase struct {
	branches     repository.BranchRepository
	categories   repository.CategoryRepository
	products     repository.ProductRepository
	translations repository.TranslationRepository
	currency     *CurrencyUseCase
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(
	branches repository.BranchRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	translations repository.TranslationRepository,
	currency *CurrencyUseCase,
) *MenuUseCase {
	return &MenuUseCase{
		branches:     branches,
		categories:   categories,
		products:     products,
		translations: translations,
		currency:     currency,
	}
}

// BuildMenu resuelve el menú completo de la sucursal para el idioma dado.
// categoryFilter != 0 restringe el árbol a esa categoría. La sucursal
// inexistente es el único fallo primario (ErrBranchNotFound); las anomalías
// por fila (recomendado colgante, traducción faltante) se degradan en
// silencio.
func (uc *MenuUseCase) BuildMenu(ctx context.Context, branchID int64, languageCode string, categoryFilter int64) (*dto.MenuResponse, error) {
	branch, err := uc.branches.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	cats, prods, err := uc.loadCatalog(ctx, branch.BusinessID)
	if err != nil {
		return nil, err
	}
	if categoryFilter != 0 {
		filtered := cats[:0]
		for _, c := range cats {
			if c.ID == categoryFilter {
				filtered = append(filtered, c)
			}
		}
		cats = filtered
	}

	menuCats, err := uc.buildCategories(ctx, branch.BusinessID, languageCode, cats, prods, true)
	if err != nil {
		return nil, err
	}

	return &dto.MenuResponse{
		Branch:     toBranchView(branch),
		Language:   languageCode,
		Currency:   uc.currency.ForLanguage(ctx, languageCode),
		Categories: menuCats,
	}, nil
}

// Categories devuelve solo la lista de categorías localizadas de la sucursal.
func (uc *MenuUseCase) Categories(ctx context.Context, branchID int64, languageCode string) (*dto.CategoryListResponse, error) {
	branch, err := uc.branches.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	cats, err := uc.categories.ListActiveByBusiness(ctx, branch.BusinessID)
	if err != nil {
		return nil, err
	}
	menuCats, err := uc.buildCategories(ctx, branch.BusinessID, languageCode, cats, nil, false)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryListResponse{
		Branch:     toBranchView(branch),
		Language:   languageCode,
		Categories: menuCats,
	}, nil
}

// Category devuelve una categoría con sus productos. Categoría inexistente,
// inactiva o de otro negocio → ErrNotFound.
func (uc *MenuUseCase) Category(ctx context.Context, branchID, categoryID int64, languageCode string) (*dto.MenuCategory, error) {
	branch, err := uc.branches.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	cat, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || !cat.IsActive || cat.BusinessID != branch.BusinessID {
		return nil, domain.ErrNotFound
	}

	_, prods, err := uc.loadCatalog(ctx, branch.BusinessID)
	if err != nil {
		return nil, err
	}
	menuCats, err := uc.buildCategories(ctx, branch.BusinessID, languageCode, []entity.Category{*cat}, prods, true)
	if err != nil {
		return nil, err
	}
	return &menuCats[0], nil
}

func (uc *MenuUseCase) loadCatalog(ctx context.Context, businessID int64) ([]entity.Category, []entity.Product, error) {
	cats, err := uc.categories.ListActiveByBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	prods, err := uc.products.ListAvailableByBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	return cats, prods, nil
}

// buildCategories ordena, traduce y proyecta las categorías. withProducts
// adjunta los productos (y sus asociaciones) de cada una.
func (uc *MenuUseCase) buildCategories(ctx context.Context, businessID int64, languageCode string, cats []entity.Category, prods []entity.Product, withProducts bool) ([]dto.MenuCategory, error) {
	catTr, err := uc.translations.CategoryTranslations(ctx, businessID, languageCode)
	if err != nil {
		return nil, err
	}

	// Orden estable e independiente del orden de iteración del storage:
	// sira_id ASC con nulos al final, empates por id ASC.
	sortCategories(cats)

	var (
		byCategory map[int64][]dto.MenuProduct
	)
	if withProducts {
		byCategory, err = uc.buildProducts(ctx, businessID, languageCode, prods)
		if err != nil {
			return nil, err
		}
	}

	out := make([]dto.MenuCategory, 0, len(cats))
	for _, c := range cats {
		var tr *entity.CategoryTranslation
		if row, ok := catTr[c.ID]; ok {
			tr = &row
		}
		loc := i18n.ResolveCategory(c, tr)
		mc := dto.MenuCategory{
			ID:           c.ID,
			Name:         loc.Name,
			Description:  loc.Description,
			ImageURL:     c.ImageURL,
			ParentID:     c.ParentID,
			DisplayOrder: c.SiraID,
		}
		if withProducts {
			mc.Products = byCategory[c.ID]
		}
		out = append(out, mc)
	}
	return out, nil
}

// buildProducts traduce y proyecta los productos agrupados por categoría,
// con etiquetas activas, porciones, ingredientes y recomendados resueltos.
func (uc *MenuUseCase) buildProducts(ctx context.Context, businessID int64, languageCode string, prods []entity.Product) (map[int64][]dto.MenuProduct, error) {
	prodTr, err := uc.translations.ProductTranslations(ctx, businessID, languageCode)
	if err != nil {
		return nil, err
	}
	labels, err := uc.products.LabelsByProduct(ctx, businessID)
	if err != nil {
		return nil, err
	}
	portions, err := uc.products.PortionsByProduct(ctx, businessID)
	if err != nil {
		return nil, err
	}
	ingredients, err := uc.products.IngredientsByProduct(ctx, businessID)
	if err != nil {
		return nil, err
	}
	recs, err := uc.products.Recommendations(ctx, businessID)
	if err != nil {
		return nil, err
	}

	sortProducts(prods)

	// Índices para resolver recomendados: solo destinos presentes en la lista
	// (activos y disponibles); los enlaces colgantes se descartan sin error.
	byID := make(map[int64]entity.Product, len(prods))
	for _, p := range prods {
		byID[p.ID] = p
	}
	recsByProduct := make(map[int64][]int64)
	for _, r := range recs {
		recsByProduct[r.ProductID] = append(recsByProduct[r.ProductID], r.RecommendedProductID)
	}

	out := make(map[int64][]dto.MenuProduct)
	for _, p := range prods {
		var tr *entity.ProductTranslation
		if row, ok := prodTr[p.ID]; ok {
			tr = &row
		}
		loc := i18n.ResolveProduct(p, tr)

		mp := dto.MenuProduct{
			ID:           p.ID,
			Name:         loc.Name,
			Description:  loc.Description,
			Allergens:    loc.Allergens,
			Price:        p.Price,
			CurrencyCode: p.CurrencyCode,
			ImageURL:     p.ImageURL,
			DisplayOrder: p.SiraID,
			Nutrition:    toNutrition(p),
		}
		for _, l := range labels[p.ID] {
			if !l.IsActive {
				continue
			}
			mp.Labels = append(mp.Labels, dto.LabelView{ID: l.ID, Name: l.Name, Description: l.Description, Color: l.Color})
		}
		for _, po := range portions[p.ID] {
			mp.Portions = append(mp.Portions, dto.PortionView{ID: po.ID, Name: po.Name, Price: po.Price})
		}
		for _, ing := range ingredients[p.ID] {
			mp.Ingredients = append(mp.Ingredients, dto.IngredientView{ID: ing.ID, Name: ing.Name, IsAllergen: ing.IsAllergen})
		}
		for _, targetID := range recsByProduct[p.ID] {
			target, ok := byID[targetID]
			if !ok {
				continue // destino inactivo, no disponible o inexistente
			}
			rloc := i18n.ResolveProduct(target, translationFor(prodTr, target.ID))
			mp.Recommended = append(mp.Recommended, dto.RecommendedView{
				ID:           target.ID,
				Name:         rloc.Name,
				Price:        target.Price,
				CurrencyCode: target.CurrencyCode,
				ImageURL:     target.ImageURL,
			})
		}
		out[p.CategoryID] = append(out[p.CategoryID], mp)
	}
	return out, nil
}

func translationFor(m map[int64]entity.ProductTranslation, id int64) *entity.ProductTranslation {
	if row, ok := m[id]; ok {
		return &row
	}
	return nil
}

func toBranchView(b *entity.Branch) dto.BranchView {
	return dto.BranchView{ID: b.ID, BusinessID: b.BusinessID, Name: b.Name, Address: b.Address}
}

func toNutrition(p entity.Product) *dto.NutritionView {
	if p.Calories == nil && p.Carbs == nil && p.Protein == nil && p.Fat == nil {
		return nil
	}
	return &dto.NutritionView{Calories: p.Calories, Carbs: p.Carbs, Protein: p.Protein, Fat: p.Fat}
}

// sortCategories ordena por sira_id ASC (nulos al final), empates por id ASC.
func sortCategories(cats []entity.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return displayLess(cats[i].SiraID, cats[i].ID, cats[j].SiraID, cats[j].ID)
	})
}

// sortProducts mismo criterio de orden que las categorías.
func sortProducts(prods []entity.Product) {
	sort.SliceStable(prods, func(i, j int) bool {
		return displayLess(prods[i].SiraID, prods[i].ID, prods[j].SiraID, prods[j].ID)
	})
}

func displayLess(siraI *int, idI int64, siraJ *int, idJ int64) bool {
	switch {
	case siraI != nil && siraJ != nil:
		if *siraI != *siraJ {
			return *siraI < *siraJ
		}
	case siraI != nil:
		return true // con orden asignado antes que sin orden
	case siraJ != nil:
		return false
	}
	return idI < idJ
}
