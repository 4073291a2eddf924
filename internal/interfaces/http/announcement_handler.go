package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/dto"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
)

// AnnouncementHandler maneja las peticiones HTTP de anuncios programados.
// El handler es el único lector del reloj: captura time.Now() una vez por
// petición y lo pasa explícito al caso de uso.
type AnnouncementHandler struct {
	uc *usecase.AnnouncementUseCase
}

// NewAnnouncementHandler construye el handler.
func NewAnnouncementHandler(uc *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// List godoc
// @Summary      Anuncios activos de un negocio, ordenados por prioridad
// @Tags         announcements
// @Produce      json
// @Param        business_id  query  int     true   "ID del negocio"
// @Param        type         query  string  false  "general | promotion | campaign | discount"
// @Param        category     query  string  false  "Filtro por categoría editorial"
// @Param        limit        query  int     false  "Máximo de filas (20 por defecto, tope 100)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	q := dto.AnnouncementQuery{
		BusinessID: int64(c.QueryInt("business_id", 0)),
		Type:       c.Query("type"),
		Category:   c.Query("category"),
		Limit:      c.QueryInt("limit", 0),
	}

	now := time.Now().UTC()
	out, err := h.uc.Active(c.Context(), q, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// Promotions godoc
// @Summary      Anuncios de tipo promoción vigentes
// @Tags         announcements
// @Produce      json
// @Param        business_id  query  int  false  "ID del negocio (opcional)"
// @Success      200  {object}  dto.Envelope
// @Router       /announcements/promotions [get]
func (h *AnnouncementHandler) Promotions(c *fiber.Ctx) error {
	businessID := int64(c.QueryInt("business_id", 0))
	now := time.Now().UTC()
	out, err := h.uc.Promotions(c.Context(), businessID, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// Campaigns godoc
// @Summary      Anuncios de tipo campaña vigentes de un negocio
// @Tags         announcements
// @Produce      json
// @Param        business_id  query  int  true  "ID del negocio"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /announcements/campaigns [get]
func (h *AnnouncementHandler) Campaigns(c *fiber.Ctx) error {
	businessID := int64(c.QueryInt("business_id", 0))
	now := time.Now().UTC()
	out, err := h.uc.Campaigns(c.Context(), businessID, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// Countdown godoc
// @Summary      Anuncios vigentes con cuenta regresiva a futuro
// @Tags         announcements
// @Produce      json
// @Param        business_id  query  int  false  "ID del negocio (opcional)"
// @Success      200  {object}  dto.Envelope
// @Router       /announcements/countdown [get]
func (h *AnnouncementHandler) Countdown(c *fiber.Ctx) error {
	businessID := int64(c.QueryInt("business_id", 0))
	now := time.Now().UTC()
	out, err := h.uc.WithCountdown(c.Context(), businessID, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// ForProduct godoc
// @Summary      Anuncios vigentes aplicables a un producto
// @Tags         announcements
// @Produce      json
// @Param        productId    path   int  true   "ID del producto"
// @Param        business_id  query  int  false  "ID del negocio (opcional)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /announcements/product/{productId} [get]
func (h *AnnouncementHandler) ForProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "productId inválido")
	}
	businessID := int64(c.QueryInt("business_id", 0))

	now := time.Now().UTC()
	out, err := h.uc.ForProduct(c.Context(), int64(productID), businessID, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// ForCategory godoc
// @Summary      Anuncios vigentes aplicables a una categoría de menú
// @Tags         announcements
// @Produce      json
// @Param        categoryId   path   int  true   "ID de la categoría"
// @Param        business_id  query  int  false  "ID del negocio (opcional)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /announcements/category/{categoryId} [get]
func (h *AnnouncementHandler) ForCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil || categoryID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "categoryId inválido")
	}
	businessID := int64(c.QueryInt("business_id", 0))

	now := time.Now().UTC()
	out, err := h.uc.ForCategory(c.Context(), int64(categoryID), businessID, now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}

// GetByID godoc
// @Summary      Un anuncio publicado por ID, aun fuera de ventana
// @Tags         announcements
// @Produce      json
// @Param        id  path  int  true  "ID del anuncio"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /announcements/{id} [get]
func (h *AnnouncementHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
	}

	now := time.Now().UTC()
	out, err := h.uc.Get(c.Context(), int64(id), now)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, out, now)
}
