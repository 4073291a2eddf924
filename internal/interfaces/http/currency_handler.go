package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
)

// CurrencyHandler maneja las peticiones HTTP de monedas y conversión.
type CurrencyHandler struct {
	uc *usecase.CurrencyUseCase
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(uc *usecase.CurrencyUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// List godoc
// @Summary      Monedas activas
// @Tags         currencies
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /currencies [get]
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	now := time.Now().UTC()
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// Get godoc
// @Summary      Una moneda activa con los idiomas que la usan por defecto
// @Tags         currencies
// @Produce      json
// @Param        code  path  string  true  "Código ISO-4217 (insensible a mayúsculas)"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /currencies/{code} [get]
func (h *CurrencyHandler) Get(c *fiber.Ctx) error {
	code := strings.ToUpper(c.Params("code"))
	now := time.Now().UTC()
	out, err := h.uc.Get(c.Context(), code)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// Convert godoc
// @Summary      Convertir un monto entre dos monedas vía pivote USD
// @Tags         currencies
// @Produce      json
// @Param        from    path  string  true  "Moneda origen"
// @Param        to      path  string  true  "Moneda destino"
// @Param        amount  path  string  true  "Monto decimal no negativo"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /currencies/convert/{from}/{to}/{amount} [get]
func (h *CurrencyHandler) Convert(c *fiber.Ctx) error {
	from := strings.ToUpper(c.Params("from"))
	to := strings.ToUpper(c.Params("to"))
	amount := c.Params("amount")

	now := time.Now().UTC()
	out, err := h.uc.Convert(c.Context(), amount, from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}
