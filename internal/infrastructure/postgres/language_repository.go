package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/entity"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/repository"
)

var (
	_ repository.LanguageRepository = (*LanguageRepo)(nil)
	_ repository.CurrencyRepository = (*CurrencyRepo)(nil)
)

// LanguageRepo implementación del puerto LanguageRepository sobre PostgreSQL.
type LanguageRepo struct {
	q Querier
}

// NewLanguageRepository construye el adaptador de lectura para idiomas.
func NewLanguageRepository(q Querier) *LanguageRepo {
	return &LanguageRepo{q: q}
}

// GetByCode obtiene un idioma por código. (nil, nil) si no existe.
func (r *LanguageRepo) GetByCode(ctx context.Context, code string) (*entity.Language, error) {
	query := `
		SELECT code, name, native_name, is_default, direction, default_currency_code
		FROM languages WHERE code = $1`
	var l entity.Language
	err := r.q.QueryRow(ctx, query, code).Scan(
		&l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.Direction, &l.DefaultCurrencyCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get language: %w", err)
	}
	return &l, nil
}

// ListByCurrency idiomas cuya moneda por defecto es la dada.
func (r *LanguageRepo) ListByCurrency(ctx context.Context, currencyCode string) ([]entity.Language, error) {
	query := `
		SELECT code, name, native_name, is_default, direction, default_currency_code
		FROM languages WHERE default_currency_code = $1 ORDER BY code ASC`
	rows, err := r.q.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("list languages by currency: %w", err)
	}
	defer rows.Close()

	var list []entity.Language
	for rows.Next() {
		var l entity.Language
		if err := rows.Scan(&l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.Direction, &l.DefaultCurrencyCode); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// CurrencyRepo implementación del puerto CurrencyRepository sobre PostgreSQL.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador de lectura para monedas.
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

// GetActiveByCode obtiene una moneda activa por código. (nil, nil) si no
// existe o está desactivada.
func (r *CurrencyRepo) GetActiveByCode(ctx context.Context, code string) (*entity.Currency, error) {
	query := `
		SELECT code, symbol, name, rate_to_usd, is_active, updated_at
		FROM currencies WHERE code = $1 AND is_active = true`
	var c entity.Currency
	err := r.q.QueryRow(ctx, query, code).Scan(
		&c.Code, &c.Symbol, &c.Name, &c.RateToUSD, &c.IsActive, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// ListActive lista todas las monedas activas.
func (r *CurrencyRepo) ListActive(ctx context.Context) ([]entity.Currency, error) {
	query := `
		SELECT code, symbol, name, rate_to_usd, is_active, updated_at
		FROM currencies WHERE is_active = true ORDER BY code ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var list []entity.Currency
	for rows.Next() {
		var c entity.Currency
		if err := rows.Scan(&c.Code, &c.Symbol, &c.Name, &c.RateToUSD, &c.IsActive, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
