package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrBranchNotFound       = errors.New("sucursal no encontrada")
	ErrCurrencyNotFound     = errors.New("moneda no encontrada")
	ErrAnnouncementNotFound = errors.New("anuncio no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidAmount        = errors.New("monto inválido")
	ErrInvalidRate          = errors.New("tasa de cambio inválida")
	ErrBusinessIDRequired   = errors.New("business_id es requerido")
)
