package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyAmount total de un mes (1-12) para las series del dashboard.
type MonthlyAmount struct {
	Month int
	Total decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el tablero.
type DashboardRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	SumPayments(ctx context.Context) (decimal.Decimal, error)
	SumUnpaidBills(ctx context.Context) (decimal.Decimal, error)
	// MonthlyPaid agrupa pagos por mes del año indicado.
	MonthlyPaid(ctx context.Context, year int) ([]MonthlyAmount, error)
	// MonthlyUnpaid agrupa facturas no pagadas por mes de fin de periodo.
	MonthlyUnpaid(ctx context.Context, year int) ([]MonthlyAmount, error)
}
