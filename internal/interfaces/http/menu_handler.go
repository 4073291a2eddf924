package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
)

// MenuHandler maneja las peticiones HTTP del menú público (QR).
type MenuHandler struct {
	uc              *usecase.MenuUseCase
	defaultLanguage string
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase, defaultLanguage string) *MenuHandler {
	return &MenuHandler{uc: uc, defaultLanguage: defaultLanguage}
}

// GetMenu godoc
// @Summary      Menú completo de una sucursal
// @Tags         menu
// @Produce      json
// @Param        branchId  path   int     true   "ID de la sucursal"
// @Param        lang      query  string  false  "Código de idioma (tr por defecto)"
// @Param        category  query  int     false  "Limitar a una categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menu/{branchId} [get]
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchId")
	if err != nil || branchID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "branchId inválido")
	}
	lang, ok := resolveLanguage(c, h.defaultLanguage)
	if !ok {
		return respondError(c, fiber.StatusBadRequest, "UNSUPPORTED_LANGUAGE", "idioma no soportado")
	}
	categoryFilter := int64(c.QueryInt("category", 0))

	now := time.Now().UTC()
	out, err := h.uc.BuildMenu(c.Context(), int64(branchID), lang, categoryFilter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// GetCategories godoc
// @Summary      Categorías activas de la sucursal, sin productos
// @Tags         menu
// @Produce      json
// @Param        branchId  path   int     true   "ID de la sucursal"
// @Param        lang      query  string  false  "Código de idioma"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menu/{branchId}/categories [get]
func (h *MenuHandler) GetCategories(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchId")
	if err != nil || branchID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "branchId inválido")
	}
	lang, ok := resolveLanguage(c, h.defaultLanguage)
	if !ok {
		return respondError(c, fiber.StatusBadRequest, "UNSUPPORTED_LANGUAGE", "idioma no soportado")
	}

	now := time.Now().UTC()
	out, err := h.uc.Categories(c.Context(), int64(branchID), lang)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// GetCategory godoc
// @Summary      Una categoría de la sucursal con sus productos
// @Tags         menu
// @Produce      json
// @Param        branchId    path   int     true   "ID de la sucursal"
// @Param        categoryId  path   int     true   "ID de la categoría"
// @Param        lang        query  string  false  "Código de idioma"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menu/{branchId}/category/{categoryId} [get]
func (h *MenuHandler) GetCategory(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchId")
	if err != nil || branchID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "branchId inválido")
	}
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil || categoryID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "categoryId inválido")
	}
	lang, ok := resolveLanguage(c, h.defaultLanguage)
	if !ok {
		return respondError(c, fiber.StatusBadRequest, "UNSUPPORTED_LANGUAGE", "idioma no soportado")
	}

	now := time.Now().UTC()
	out, err := h.uc.Category(c.Context(), int64(branchID), int64(categoryID), lang)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}
