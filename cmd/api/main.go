package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/barstock-api/internal/application/usecase"
	"github.com/jhoicas/barstock-api/internal/domain/export"
	infraai "github.com/jhoicas/barstock-api/internal/infrastructure/ai"
	"github.com/jhoicas/barstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/barstock-api/internal/interfaces/http"
	"github.com/jhoicas/barstock-api/pkg/config"
	"github.com/jhoicas/barstock-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewInventoryItemRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	recordRepo := postgres.NewInventoryRecordRepository(pool)

	inventoryUC := usecase.NewInventoryUseCase(itemRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, itemRepo)
	historyUC := usecase.NewHistoryUseCase(recordRepo, export.NewFormatter(export.DefaultConfig()))

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports CSV y la IA tardan más que un GET normal
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// El frontend se sirve desde otro origen: misma política abierta que
	// llevaba la API original.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Content-Disposition",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		HistoryUC:   historyUC,
		AIUC:        aiUC,
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
