package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Acueducto-api/internal/application/analytics"
	"github.com/jhoicas/Acueducto-api/internal/application/auth"
	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/usecase"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *usecase.CustomerUseCase
	MeterUC       *usecase.MeterUseCase
	ReceiptUC     *usecase.ReceiptUseCase
	RecordReading *billing.RecordReadingUseCase
	PaymentUC     *billing.PaymentUseCase
	BillsUC       *billing.BillsUseCase
	SettingsUC    *billing.SettingsUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)

	// Meters (protegido)
	meters := protected.Group("/meters")
	meterHandler := NewMeterHandler(deps.MeterUC)
	meters.Post("/", meterHandler.Create)
	meters.Get("/", meterHandler.List)
	meters.Get("/search", meterHandler.Search)

	// Readings: registro de lectura + liquidación (protegido)
	readings := protected.Group("/readings")
	readingHandler := NewReadingHandler(deps.RecordReading)
	readings.Post("/", readingHandler.Create)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)

	// Billing: cartera y tarifa (protegido; cambiar tarifa solo admin)
	billingHandler := NewBillingHandler(deps.BillsUC, deps.SettingsUC)
	bills := protected.Group("/billing/bills")
	bills.Get("/", billingHandler.ListBills)
	bills.Get("/:id", billingHandler.GetBill)
	protected.Get("/billing_settings", billingHandler.GetSettings)
	protected.Put("/billing_settings", RequireRole(entity.RoleAdmin), billingHandler.UpdateSettings)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Get("/:id/pdf", receiptHandler.DownloadPDF)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/monthly", dashboardHandler.Monthly)
}
