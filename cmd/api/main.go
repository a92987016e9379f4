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

	appanalytics "github.com/jhoicas/Acueducto-api/internal/application/analytics"
	"github.com/jhoicas/Acueducto-api/internal/application/auth"
	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Acueducto-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Acueducto-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Acueducto-api/internal/interfaces/http"
	"github.com/jhoicas/Acueducto-api/pkg/config"
	"github.com/jhoicas/Acueducto-api/pkg/logger"
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

	defaults, err := billingDefaults(cfg.Billing)
	if err != nil {
		log.Fatal().Err(err).Msg("tarifa por defecto inválida")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	meterRepo := postgres.NewMeterRepository(pool)
	readingRepo := postgres.NewReadingRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	settingRepo := postgres.NewBillingSettingRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordReadingUC := billing.NewRecordReadingUseCase(txRunner, meterRepo, customerRepo, readingRepo, defaults)
	paymentUC := billing.NewPaymentUseCase(txRunner, billRepo, customerRepo, userRepo)
	billsUC := billing.NewBillsUseCase(billRepo, customerRepo)
	settingsUC := billing.NewSettingsUseCase(settingRepo, defaults)

	customerUC := usecase.NewCustomerUseCase(customerRepo, meterRepo)
	meterUC := usecase.NewMeterUseCase(meterRepo, customerRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	// PDF: representación gráfica del comprobante de pago
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Acueducto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		MeterUC:       meterUC,
		ReceiptUC:     receiptUC,
		RecordReading: recordReadingUC,
		PaymentUC:     paymentUC,
		BillsUC:       billsUC,
		SettingsUC:    settingsUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
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

// billingDefaults convierte la tarifa de configuración a decimales.
func billingDefaults(cfg config.BillingConfig) (billing.Defaults, error) {
	fixed, err := decimal.NewFromString(cfg.FixedCharge)
	if err != nil {
		return billing.Defaults{}, err
	}
	rate, err := decimal.NewFromString(cfg.RatePerUnit)
	if err != nil {
		return billing.Defaults{}, err
	}
	return billing.Defaults{FixedCharge: fixed, RatePerUnit: rate}, nil
}
