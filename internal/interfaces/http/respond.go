package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/i18n"
)

// respondData arma el sobre estándar {success, data, timestamp}.
func respondData(c *fiber.Ctx, data any, now time.Time) error {
	return c.JSON(dto.NewEnvelope(data, now))
}

// respondError arma el cuerpo de error {success:false, message, code}.
func respondError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message, Code: code})
}

// respondDomainError mapea la taxonomía de errores del dominio a HTTP:
// NotFound → 404, InvalidInput → 400, el resto → 500. El fallo del recurso
// primario siempre llega hasta aquí; las anomalías por fila ya fueron
// degradadas en los casos de uso.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrBranchNotFound):
		return respondError(c, fiber.StatusNotFound, "BRANCH_NOT_FOUND", "sucursal no encontrada")
	case errors.Is(err, domain.ErrCurrencyNotFound):
		return respondError(c, fiber.StatusNotFound, "CURRENCY_NOT_FOUND", "moneda no encontrada")
	case errors.Is(err, domain.ErrAnnouncementNotFound):
		return respondError(c, fiber.StatusNotFound, "ANNOUNCEMENT_NOT_FOUND", "anuncio no encontrado")
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "CATEGORY_NOT_FOUND", "categoría no encontrada")
	case errors.Is(err, domain.ErrBusinessIDRequired):
		return respondError(c, fiber.StatusBadRequest, "BUSINESS_ID_REQUIRED", "business_id es requerido")
	case errors.Is(err, domain.ErrInvalidAmount):
		return respondError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "monto inválido")
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, "INVALID_INPUT", "entrada inválida")
	default:
		return respondError(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// resolveLanguage lee y valida ?lang=. Vacío cae al idioma por defecto
// configurado; un código fuera del conjunto soportado se rechaza acá, antes
// de llegar al núcleo de resolución.
func resolveLanguage(c *fiber.Ctx, defaultLanguage string) (string, bool) {
	raw := c.Query("lang")
	if raw == "" {
		return defaultLanguage, true
	}
	code := i18n.Normalize(raw)
	if !i18n.Supported(code) {
		return "", false
	}
	return code, true
}
