package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MenuUC          *usecase.MenuUseCase
	CurrencyUC      *usecase.CurrencyUseCase
	AnnouncementUC  *usecase.AnnouncementUseCase
	DefaultLanguage string
}

// Router registra las rutas públicas del menú QR. Todo es GET y se monta en
// la raíz: las URLs van impresas en códigos QR, sin prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	// Menú
	menu := app.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC, deps.DefaultLanguage)
	menu.Get("/:branchId", menuHandler.GetMenu)
	menu.Get("/:branchId/categories", menuHandler.GetCategories)
	menu.Get("/:branchId/category/:categoryId", menuHandler.GetCategory)

	// Monedas
	currencies := app.Group("/currencies")
	currencyHandler := NewCurrencyHandler(deps.CurrencyUC)
	currencies.Get("/", currencyHandler.List)
	currencies.Get("/convert/:from/:to/:amount", currencyHandler.Convert)
	currencies.Get("/:code", currencyHandler.Get)

	// Anuncios. Las rutas estáticas van antes de /:id para que Fiber no las
	// capture como parámetro.
	announcements := app.Group("/announcements")
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	announcements.Get("/", announcementHandler.List)
	announcements.Get("/promotions", announcementHandler.Promotions)
	announcements.Get("/campaigns", announcementHandler.Campaigns)
	announcements.Get("/countdown", announcementHandler.Countdown)
	announcements.Get("/product/:productId", announcementHandler.ForProduct)
	announcements.Get("/category/:categoryId", announcementHandler.ForCategory)
	announcements.Get("/:id", announcementHandler.GetByID)
}
