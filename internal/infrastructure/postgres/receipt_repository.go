package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste un comprobante.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipts (id, payment_id, receipt_no, issued_at, receipt_json)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.PaymentID, receipt.ReceiptNo, receipt.IssuedAt, receipt.Snapshot,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene un comprobante por ID.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, payment_id, receipt_no, issued_at, receipt_json
		FROM receipts WHERE id = $1`
	var rc entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rc.ID, &rc.PaymentID, &rc.ReceiptNo, &rc.IssuedAt, &rc.Snapshot,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rc, nil
}

// List lista todos los comprobantes (más recientes primero).
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	query := `
		SELECT id, payment_id, receipt_no, issued_at, receipt_json
		FROM receipts ORDER BY issued_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.PaymentID, &rc.ReceiptNo, &rc.IssuedAt, &rc.Snapshot); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}
