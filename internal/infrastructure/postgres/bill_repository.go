package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste una factura.
func (r *BillRepo) Create(bill *entity.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	query := `
		INSERT INTO bills (id, customer_id, reading_id, billing_start, billing_end,
			previous_reading, total_reading, consumption, fixed_charge, variable_charge,
			amount_due, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.CustomerID, bill.ReadingID, bill.BillingStart, bill.BillingEnd,
		bill.PreviousReading, bill.TotalReading, bill.Consumption, bill.FixedCharge,
		bill.VariableCharge, bill.AmountDue, bill.DueDate, bill.Status, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `
		SELECT id, customer_id, reading_id, billing_start, billing_end,
		       previous_reading, total_reading, consumption, fixed_charge,
		       variable_charge, amount_due, due_date, status, created_at
		FROM bills WHERE id = $1`
	var b entity.Bill
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CustomerID, &b.ReadingID, &b.BillingStart, &b.BillingEnd,
		&b.PreviousReading, &b.TotalReading, &b.Consumption, &b.FixedCharge,
		&b.VariableCharge, &b.AmountDue, &b.DueDate, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

// ListWithContext lista facturas con nombre de suscriptor y número de medidor
// en una sola consulta (el listado agrupado las necesita juntas).
func (r *BillRepo) ListWithContext() ([]*repository.BillRow, error) {
	query := `
		SELECT b.id, b.customer_id, b.reading_id, b.billing_start, b.billing_end,
		       b.previous_reading, b.total_reading, b.consumption, b.fixed_charge,
		       b.variable_charge, b.amount_due, b.due_date, b.status, b.created_at,
		       c.name, COALESCE(m.meter_no, '')
		FROM bills b
		JOIN customers c ON c.id = b.customer_id
		LEFT JOIN readings rd ON rd.id = b.reading_id
		LEFT JOIN meters m ON m.id = rd.meter_id
		ORDER BY b.billing_end DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*repository.BillRow
	for rows.Next() {
		var row repository.BillRow
		b := &row.Bill
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.ReadingID, &b.BillingStart, &b.BillingEnd,
			&b.PreviousReading, &b.TotalReading, &b.Consumption, &b.FixedCharge,
			&b.VariableCharge, &b.AmountDue, &b.DueDate, &b.Status, &b.CreatedAt,
			&row.CustomerName, &row.MeterNo,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// SumUnpaidByCustomer suma amount_due de las facturas no pagadas del suscriptor.
func (r *BillRepo) SumUnpaidByCustomer(customerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount_due), 0) FROM bills WHERE customer_id = $1 AND status = 'unpaid'`,
		customerID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum unpaid bills: %w", err)
	}
	return total, nil
}

// UpdateStatus cambia el estado de la factura (unpaid -> paid).
func (r *BillRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bills SET status = $2 WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("update bill status: %w", err)
	}
	return nil
}
