package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero de recaudo.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountCustomers cuenta los suscriptores registrados.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCustomers: %w", err)
	}
	return n, nil
}

// CountPayments cuenta los pagos registrados.
func (r *DashboardRepo) CountPayments(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountPayments: %w", err)
	}
	return n, nil
}

// SumPayments suma todos los pagos registrados.
func (r *DashboardRepo) SumPayments(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumPayments: %w", err)
	}
	return total, nil
}

// SumUnpaidBills suma amount_due de todas las facturas no pagadas.
func (r *DashboardRepo) SumUnpaidBills(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_due), 0) FROM bills WHERE status = 'unpaid'`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumUnpaidBills: %w", err)
	}
	return total, nil
}

// MonthlyPaid agrupa pagos por mes del año indicado.
func (r *DashboardRepo) MonthlyPaid(ctx context.Context, year int) ([]repository.MonthlyAmount, error) {
	const query = `
		SELECT EXTRACT(MONTH FROM payment_date)::INT AS month, SUM(amount) AS total
		FROM payments
		WHERE EXTRACT(YEAR FROM payment_date) = $1
		GROUP BY month
		ORDER BY month`
	return r.queryMonthly(ctx, query, year, "dashboard.MonthlyPaid")
}

// MonthlyUnpaid agrupa facturas no pagadas por mes de fin de periodo.
func (r *DashboardRepo) MonthlyUnpaid(ctx context.Context, year int) ([]repository.MonthlyAmount, error) {
	const query = `
		SELECT EXTRACT(MONTH FROM billing_end)::INT AS month, SUM(amount_due) AS total
		FROM bills
		WHERE EXTRACT(YEAR FROM billing_end) = $1 AND status = 'unpaid'
		GROUP BY month
		ORDER BY month`
	return r.queryMonthly(ctx, query, year, "dashboard.MonthlyUnpaid")
}

func (r *DashboardRepo) queryMonthly(ctx context.Context, query string, year int, op string) ([]repository.MonthlyAmount, error) {
	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []repository.MonthlyAmount
	for rows.Next() {
		var m repository.MonthlyAmount
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
