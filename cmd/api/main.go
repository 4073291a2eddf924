package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/application/usecase"
	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/Ahmethulusi/QRMenu-App-sub001/internal/interfaces/http"
	"github.com/Ahmethulusi/QRMenu-App-sub001/pkg/config"
	"github.com/Ahmethulusi/QRMenu-App-sub001/pkg/logger"
)

// swaggerFile artefacto OpenAPI servido por la UI de docs.
const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	translationRepo := postgres.NewTranslationRepository(pool)
	languageRepo := postgres.NewLanguageRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)

	currencyUC := usecase.NewCurrencyUseCase(
		languageRepo, currencyRepo,
		time.Duration(cfg.Menu.CurrencyCacheTTL)*time.Second,
	)
	menuUC := usecase.NewMenuUseCase(branchRepo, categoryRepo, productRepo, translationRepo, currencyUC)
	announcementUC := usecase.NewAnnouncementUseCase(announcementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs. El middleware lee el
	// archivo al construirse y entra en pánico si falta, así que solo se monta
	// si el artefacto está presente.
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "QR Menu API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json ausente, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MenuUC:          menuUC,
		CurrencyUC:      currencyUC,
		AnnouncementUC:  announcementUC,
		DefaultLanguage: cfg.Menu.DefaultLanguage,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
