package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/restaurante-pos/internal/application/inventory"
	"github.com/jhoicas/restaurante-pos/internal/application/menuuc"
	apporders "github.com/jhoicas/restaurante-pos/internal/application/orders"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/internal/domain/menu"
	infrapdf "github.com/jhoicas/restaurante-pos/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/restaurante-pos/internal/interfaces/http"
	"github.com/jhoicas/restaurante-pos/pkg/config"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

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

	// Estado de la sesión: stock y catálogo viven en memoria, propiedad
	// exclusiva de este proceso. El mutex compartido serializa toda ruta que
	// toca el stock (la secuencia validar-luego-descontar del checkout incluida).
	var mu sync.Mutex
	stock := entity.NewStock()
	catalog := menu.DefaultCarta()

	info := apporders.RestaurantInfo{
		Name:    cfg.Restaurant.Name,
		RUT:     cfg.Restaurant.RUT,
		Address: cfg.Restaurant.Address,
		Phone:   cfg.Restaurant.Phone,
	}
	ivaRate := decimal.NewFromFloat(cfg.Billing.IVARate)

	boletaGen := infrapdf.NewBoletaGenerator()
	cartaGen := infrapdf.NewCartaGenerator()

	stockUC := appinventory.NewUseCase(&mu, stock, log)
	orderUC := apporders.NewUseCase(&mu, stock, catalog, boletaGen, info, ivaRate, cfg.PDF.OutputDir, log)
	menuUC := menuuc.NewUseCase(&mu, stock, catalog, cartaGen, cfg.PDF.OutputDir, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC: stockUC,
		MenuUC:  menuUC,
		OrderUC: orderUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
