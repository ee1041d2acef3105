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
	"github.com/shopspring/decimal"

	appledger "github.com/powerlinea/gridstock-api/internal/application/ledger"
	appplanning "github.com/powerlinea/gridstock-api/internal/application/planning"
	"github.com/powerlinea/gridstock-api/internal/application/ports"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/stock"
	infraai "github.com/powerlinea/gridstock-api/internal/infrastructure/ai"
	infrapdf "github.com/powerlinea/gridstock-api/internal/infrastructure/pdf"
	"github.com/powerlinea/gridstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/powerlinea/gridstock-api/internal/interfaces/http"
	"github.com/powerlinea/gridstock-api/pkg/config"
	"github.com/powerlinea/gridstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	ledgerRepo := postgres.NewLedgerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	historyRepo := postgres.NewForecastHistoryRepository(pool)

	// Catálogo de materiales: se carga una vez al arranque desde la tabla
	// materials; si está vacía se usa el catálogo por defecto de líneas de
	// transmisión.
	cat := catalog.Default()
	if materials, err := materialRepo.ListAll(ctx); err != nil {
		log.Error().Err(err).Msg("leer maestro de materiales, usando catálogo por defecto")
	} else if len(materials) > 0 {
		loaded, err := catalog.New(materials)
		if err != nil {
			log.Fatal().Err(err).Msg("maestro de materiales inválido")
		}
		cat = loaded
	}
	log.Info().Int("materials", cat.Len()).Msg("catálogo cargado")

	// Política de reorden desde configuración (umbral por material).
	overrides := make(map[string]decimal.Decimal, len(cfg.Reorder.Points))
	for id, point := range cfg.Reorder.Points {
		overrides[id] = decimal.NewFromFloat(point)
	}
	policy := stock.FixedReorderPolicy(decimal.NewFromFloat(cfg.Reorder.DefaultPoint), overrides)

	// Oráculo de predicción de demanda (opcional).
	var oracle ports.ForecastOracle
	if cfg.Oracle.BaseURL != "" {
		oracle = infraai.NewPredictionService(cfg.Oracle.BaseURL, time.Duration(cfg.Oracle.TimeoutSeconds)*time.Second)
	}

	recordUC := appledger.NewRecordEventUseCase(cat, ledgerRepo, projectRepo)
	stockUC := appledger.NewStockQueryUseCase(cat, ledgerRepo, projectRepo)
	alertsUC := appledger.NewAlertsUseCase(cat, ledgerRepo, projectRepo, policy, log)

	reportGen := infrapdf.NewMarotoReportGenerator()
	firstStockingUC := appplanning.NewFirstStockingUseCase(cat, projectRepo, historyRepo, reportGen)
	orderingUC := appplanning.NewOrderingScheduleUseCase(cat)
	forecastUC := appplanning.NewForecastHistoryUseCase(projectRepo, historyRepo, oracle)

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
		Title:    "GridStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordEvent:      recordUC,
		StockQuery:       stockUC,
		Alerts:           alertsUC,
		FirstStocking:    firstStockingUC,
		OrderingSchedule: orderingUC,
		ForecastHistory:  forecastUC,
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
