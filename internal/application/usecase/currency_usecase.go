package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/money"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

// fallbackUSD descriptor devuelto cuando el idioma o su moneda no resuelven.
// Nunca se falla hacia el cliente: la UI siempre tiene algo que renderizar.
func fallbackUSD() dto.CurrencyDescriptor {
	return dto.CurrencyDescriptor{
		Code:      "USD",
		Symbol:    "$",
		Name:      "US Dollar",
		RateToUSD: decimal.NewFromInt(1),
	}
}

type cachedDescriptor struct {
	desc      dto.CurrencyDescriptor
	fetchedAt time.Time
}

// CurrencyUseCase resuelve la moneda de exhibición por idioma y convierte
// montos entre monedas activas. Las consultas Language→Currency se memoizan
// con TTL acotado: un cambio de tasa se vuelve visible a nuevos requests
// dentro de cacheTTL como máximo.
type CurrencyUseCase struct {
	languages  repository.LanguageRepository
	currencies repository.CurrencyRepository
	cacheTTL   time.Duration

	mu    sync.RWMutex
	cache map[string]cachedDescriptor
}

// NewCurrencyUseCase construye el caso de uso. cacheTTL <= 0 desactiva el cache.
func NewCurrencyUseCase(languages repository.LanguageRepository, currencies repository.CurrencyRepository, cacheTTL time.Duration) *CurrencyUseCase {
	return &CurrencyUseCase{
		languages:  languages,
		currencies: currencies,
		cacheTTL:   cacheTTL,
		cache:      make(map[string]cachedDescriptor),
	}
}

// ForLanguage devuelve la moneda de exhibición del idioma. Idioma
// desconocido, moneda faltante o inactiva, o error de storage degradan al
// descriptor USD de fallback: este método no devuelve error jamás.
func (uc *CurrencyUseCase) ForLanguage(ctx context.Context, languageCode string) dto.CurrencyDescriptor {
	if d, ok := uc.cached(languageCode); ok {
		return d
	}

	desc := uc.lookup(ctx, languageCode)
	uc.store(languageCode, desc)
	return desc
}

func (uc *CurrencyUseCase) lookup(ctx context.Context, languageCode string) dto.CurrencyDescriptor {
	lang, err := uc.languages.GetByCode(ctx, languageCode)
	if err != nil || lang == nil || lang.DefaultCurrencyCode == "" {
		return fallbackUSD()
	}
	cur, err := uc.currencies.GetActiveByCode(ctx, lang.DefaultCurrencyCode)
	if err != nil || cur == nil || !cur.RateToUSD.IsPositive() {
		return fallbackUSD()
	}
	return dto.CurrencyDescriptor{
		Code:      cur.Code,
		Symbol:    cur.Symbol,
		Name:      cur.Name,
		RateToUSD: cur.RateToUSD,
	}
}

func (uc *CurrencyUseCase) cached(key string) (dto.CurrencyDescriptor, bool) {
	if uc.cacheTTL <= 0 {
		return dto.CurrencyDescriptor{}, false
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	entry, ok := uc.cache[key]
	if !ok || time.Since(entry.fetchedAt) > uc.cacheTTL {
		return dto.CurrencyDescriptor{}, false
	}
	return entry.desc, true
}

func (uc *CurrencyUseCase) store(key string, d dto.CurrencyDescriptor) {
	if uc.cacheTTL <= 0 {
		return
	}
	uc.mu.Lock()
	uc.cache[key] = cachedDescriptor{desc: d, fetchedAt: time.Now()}
	uc.mu.Unlock()
}

// Convert convierte amountRaw (texto del path) entre dos monedas activas.
// Monto no parseable o negativo → ErrInvalidAmount; código desconocido o
// inactivo → ErrCurrencyNotFound.
func (uc *CurrencyUseCase) Convert(ctx context.Context, amountRaw, fromCode, toCode string) (*dto.ConversionResponse, error) {
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	from, err := uc.currencies.GetActiveByCode(ctx, fromCode)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, domain.ErrCurrencyNotFound
	}
	to, err := uc.currencies.GetActiveByCode(ctx, toCode)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, domain.ErrCurrencyNotFound
	}

	converted, err := money.Convert(amount, from.RateToUSD, to.RateToUSD)
	if err != nil {
		return nil, err
	}
	rate, err := money.PairRate(from.RateToUSD, to.RateToUSD)
	if err != nil {
		return nil, err
	}

	return &dto.ConversionResponse{
		Amount:    amount,
		Converted: converted,
		Rate:      rate,
		From:      toDescriptor(from),
		To:        toDescriptor(to),
	}, nil
}

// List devuelve todas las monedas activas.
func (uc *CurrencyUseCase) List(ctx context.Context) (*dto.CurrencyListResponse, error) {
	list, err := uc.currencies.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyView, 0, len(list))
	for _, c := range list {
		items = append(items, toCurrencyView(c))
	}
	return &dto.CurrencyListResponse{Items: items, Count: len(items)}, nil
}

// Get devuelve una moneda activa junto con los idiomas que la usan por defecto.
func (uc *CurrencyUseCase) Get(ctx context.Context, code string) (*dto.CurrencyDetailResponse, error) {
	cur, err := uc.currencies.GetActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, domain.ErrCurrencyNotFound
	}
	langs, err := uc.languages.ListByCurrency(ctx, cur.Code)
	if err != nil {
		return nil, err
	}
	views := make([]dto.LanguageView, 0, len(langs))
	for _, l := range langs {
		views = append(views, dto.LanguageView{
			Code:                l.Code,
			Name:                l.Name,
			NativeName:          l.NativeName,
			IsDefault:           l.IsDefault,
			Direction:           l.Direction,
			DefaultCurrencyCode: l.DefaultCurrencyCode,
		})
	}
	return &dto.CurrencyDetailResponse{Currency: toCurrencyView(*cur), Languages: views}, nil
}

func toDescriptor(c *entity.Currency) dto.CurrencyDescriptor {
	return dto.CurrencyDescriptor{
		Code:      c.Code,
		Symbol:    c.Symbol,
		Name:      c.Name,
		RateToUSD: c.RateToUSD,
	}
}

func toCurrencyView(c entity.Currency) dto.CurrencyView {
	return dto.CurrencyView{
		Code:      c.Code,
		Symbol:    c.Symbol,
		Name:      c.Name,
		RateToUSD: c.RateToUSD,
		UpdatedAt: c.UpdatedAt,
	}
}
