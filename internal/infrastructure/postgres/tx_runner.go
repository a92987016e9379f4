package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// Ensure TxRunner implements the billing transaction ports.
var _ billing.ReadingTxRunner = (*TxRunner)(nil)
var _ billing.PaymentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReading inicia una transacción con los repos que necesita la liquidación
// de una lectura (lectura + tarifa + factura + saldo) y hace Commit o Rollback.
// Lectura, factura y saldo del suscriptor se aplican todo-o-nada.
func (r *TxRunner) RunReading(ctx context.Context, fn func(
	readingRepo repository.ReadingRepository,
	settingRepo repository.BillingSettingRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	readingRepo := NewReadingRepository(tx)
	settingRepo := NewBillingSettingRepository(tx)
	billRepo := NewBillRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(readingRepo, settingRepo, billRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia una transacción con los repos del registro de un pago
// (pago + estado de factura + saldo + comprobante).
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paymentRepo := NewPaymentRepository(tx)
	billRepo := NewBillRepository(tx)
	customerRepo := NewCustomerRepository(tx)
	receiptRepo := NewReceiptRepository(tx)

	if err := fn(paymentRepo, billRepo, customerRepo, receiptRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
