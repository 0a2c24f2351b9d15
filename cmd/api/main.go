package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Deposito-api/docs"
	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/auth"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/application/report"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
	infraai "github.com/jhoicas/Deposito-api/internal/infrastructure/ai"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/memory"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Deposito-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Deposito-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Deposito-api/internal/interfaces/http"
	"github.com/jhoicas/Deposito-api/pkg/config"
	"github.com/jhoicas/Deposito-api/pkg/logger"
)

// @title                      Depósito API
// @version                    1.0
// @description                Consola de depósitos: catálogo, stock por depósito, movimientos, importación CSV y reportes.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization

const devJWTSecret = "deposito-dev-secret"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		log.Warn().Msg("JWT_SECRET vacío, usando secreto de desarrollo")
		jwtSecret = devJWTSecret
	}

	// Estado en memoria: todo se pierde al reiniciar el proceso.
	store := memory.NewStore()
	if cfg.App.SeedData {
		if err := store.Load(context.Background(), memory.DefaultSeed(time.Now().UTC())); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	recorder := metrics.New("deposito")

	guard := access.NewGuard(store)
	authUC := auth.NewAuthUseCase(store, guard, auth.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(store)
	warehouseUC := usecase.NewWarehouseUseCase(store)
	roleUC := usecase.NewRoleUseCase(store)
	userUC := usecase.NewUserUseCase(store)
	adminUC := usecase.NewAdminUseCase(store)
	stockUC := inventory.NewStockUseCase(store)
	transferUC := inventory.NewTransferUseCase(store, recorder)
	importUC := inventory.NewImportUseCase(store, recorder)
	reportUC := report.NewUseCase(store,
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		infraxlsx.NewExcelizeExporter(),
	)

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	aiUC := usecase.NewAIUseCase(llm, store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxBytes + 64<<10,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog(), recorder))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Depósito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "version": store.Version()})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Guard:          guard,
		AuthUC:         authUC,
		ProductUC:      productUC,
		WarehouseUC:    warehouseUC,
		RoleUC:         roleUC,
		UserUC:         userUC,
		AdminUC:        adminUC,
		AIUC:           aiUC,
		StockUC:        stockUC,
		TransferUC:     transferUC,
		ImportUC:       importUC,
		ReportUC:       reportUC,
		JWTSecret:      jwtSecret,
		ImportMaxBytes: cfg.Import.MaxBytes,
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
