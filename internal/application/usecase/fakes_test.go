package usecase_test

import (
	"context"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de
// los adaptadores postgres: (nil, nil) cuando no hay fila, filtros de
// activo/disponible en el listado, sin garantía de orden.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBranchRepo struct {
	branches map[int64]entity.Branch
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id int64) (*entity.Branch, error) {
	if b, ok := f.branches[id]; ok {
		return &b, nil
	}
	return nil, nil
}

type fakeCategoryRepo struct {
	cats []entity.Category
}

func (f *fakeCategoryRepo) ListActiveByBusiness(_ context.Context, businessID int64) ([]entity.Category, error) {
	var out []entity.Category
	for _, c := range f.cats {
		if c.BusinessID == businessID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	for _, c := range f.cats {
		if c.ID == id {
			cc := c
			return &cc, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	prods       []entity.Product
	labels      map[int64][]entity.Label
	portions    map[int64][]entity.Portion
	ingredients map[int64][]entity.Ingredient
	recs        []entity.RecommendedProduct
}

func (f *fakeProductRepo) ListAvailableByBusiness(_ context.Context, businessID int64) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.prods {
		if p.BusinessID == businessID && p.IsActive && p.IsAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) LabelsByProduct(_ context.Context, _ int64) (map[int64][]entity.Label, error) {
	if f.labels == nil {
		return map[int64][]entity.Label{}, nil
	}
	return f.labels, nil
}

func (f *fakeProductRepo) PortionsByProduct(_ context.Context, _ int64) (map[int64][]entity.Portion, error) {
	if f.portions == nil {
		return map[int64][]entity.Portion{}, nil
	}
	return f.portions, nil
}

func (f *fakeProductRepo) IngredientsByProduct(_ context.Context, _ int64) (map[int64][]entity.Ingredient, error) {
	if f.ingredients == nil {
		return map[int64][]entity.Ingredient{}, nil
	}
	return f.ingredients, nil
}

func (f *fakeProductRepo) Recommendations(_ context.Context, _ int64) ([]entity.RecommendedProduct, error) {
	return f.recs, nil
}

type fakeTranslationRepo struct {
	catTr  []entity.CategoryTranslation
	prodTr []entity.ProductTranslation
}

func (f *fakeTranslationRepo) CategoryTranslations(_ context.Context, _ int64, lang string) (map[int64]entity.CategoryTranslation, error) {
	out := map[int64]entity.CategoryTranslation{}
	for _, tr := range f.catTr {
		if tr.LanguageCode == lang {
			out[tr.CategoryID] = tr
		}
	}
	return out, nil
}

func (f *fakeTranslationRepo) ProductTranslations(_ context.Context, _ int64, lang string) (map[int64]entity.ProductTranslation, error) {
	out := map[int64]entity.ProductTranslation{}
	for _, tr := range f.prodTr {
		if tr.LanguageCode == lang {
			out[tr.ProductID] = tr
		}
	}
	return out, nil
}

type fakeLanguageRepo struct {
	langs map[string]entity.Language
}

func (f *fakeLanguageRepo) GetByCode(_ context.Context, code string) (*entity.Language, error) {
	if l, ok := f.langs[code]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeLanguageRepo) ListByCurrency(_ context.Context, currencyCode string) ([]entity.Language, error) {
	var out []entity.Language
	for _, l := range f.langs {
		if l.DefaultCurrencyCode == currencyCode {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeCurrencyRepo struct {
	curs map[string]entity.Currency
}

func (f *fakeCurrencyRepo) GetActiveByCode(_ context.Context, code string) (*entity.Currency, error) {
	if c, ok := f.curs[code]; ok && c.IsActive {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCurrencyRepo) ListActive(_ context.Context) ([]entity.Currency, error) {
	var out []entity.Currency
	for _, c := range f.curs {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAnnouncementRepo struct {
	rows []entity.Announcement
}

func (f *fakeAnnouncementRepo) ListActive(_ context.Context, businessID int64, annType string) ([]entity.Announcement, error) {
	var out []entity.Announcement
	for _, a := range f.rows {
		if !a.IsActive {
			continue
		}
		if businessID != 0 && a.BusinessID != businessID {
			continue
		}
		if annType != "" && a.Type != annType {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) GetByID(_ context.Context, id int64) (*entity.Announcement, error) {
	for _, a := range f.rows {
		if a.ID == id {
			aa := a
			return &aa, nil
		}
	}
	return nil, nil
}
