package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// ReadingTxRunner ejecuta la liquidación de una lectura dentro de una
// transacción: lectura, tarifa, factura y saldo se confirman todo-o-nada.
type ReadingTxRunner interface {
	RunReading(ctx context.Context, fn func(
		readingRepo repository.ReadingRepository,
		settingRepo repository.BillingSettingRepository,
		billRepo repository.BillRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// PaymentTxRunner ejecuta el registro de un pago dentro de una transacción:
// pago, estado de factura, saldo y comprobante.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		billRepo repository.BillRepository,
		customerRepo repository.CustomerRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}

// Defaults tarifa inicial que se siembra si la tabla billing_settings está
// vacía (viene de configuración; por defecto 2000.00 fijo y 350.00 por unidad).
type Defaults struct {
	FixedCharge decimal.Decimal
	RatePerUnit decimal.Decimal
}
