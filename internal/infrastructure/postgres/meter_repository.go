package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.MeterRepository = (*MeterRepo)(nil)

// MeterRepo implementación de MeterRepository (usable con pool o tx).
type MeterRepo struct {
	q Querier
}

// NewMeterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMeterRepository(q Querier) *MeterRepo {
	return &MeterRepo{q: q}
}

// Create persiste un nuevo medidor.
func (r *MeterRepo) Create(meter *entity.Meter) error {
	if meter.ID == "" {
		meter.ID = uuid.New().String()
	}
	query := `
		INSERT INTO meters (id, meter_no, customer_id, installed_at, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		meter.ID, meter.MeterNo, meter.CustomerID, meter.InstalledAt, meter.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert meter: %w", err)
	}
	return nil
}

// GetByID obtiene un medidor por ID.
func (r *MeterRepo) GetByID(id string) (*entity.Meter, error) {
	query := `
		SELECT id, meter_no, customer_id, installed_at, status
		FROM meters WHERE id = $1`
	var m entity.Meter
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.MeterNo, &m.CustomerID, &m.InstalledAt, &m.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meter: %w", err)
	}
	return &m, nil
}

// List lista todos los medidores.
func (r *MeterRepo) List() ([]*entity.Meter, error) {
	query := `
		SELECT id, meter_no, customer_id, installed_at, status
		FROM meters ORDER BY meter_no`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list meters: %w", err)
	}
	defer rows.Close()
	return scanMeters(rows)
}

// ListByCustomer lista los medidores de un suscriptor.
func (r *MeterRepo) ListByCustomer(customerID string) ([]*entity.Meter, error) {
	query := `
		SELECT id, meter_no, customer_id, installed_at, status
		FROM meters WHERE customer_id = $1 ORDER BY meter_no`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list meters by customer: %w", err)
	}
	defer rows.Close()
	return scanMeters(rows)
}

// Search busca medidores por número de serie.
func (r *MeterRepo) Search(q string, limit int) ([]*entity.Meter, error) {
	query := `
		SELECT id, meter_no, customer_id, installed_at, status
		FROM meters WHERE meter_no ILIKE $1 ORDER BY meter_no LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search meters: %w", err)
	}
	defer rows.Close()
	return scanMeters(rows)
}

func scanMeters(rows pgx.Rows) ([]*entity.Meter, error) {
	var list []*entity.Meter
	for rows.Next() {
		var m entity.Meter
		if err := rows.Scan(&m.ID, &m.MeterNo, &m.CustomerID, &m.InstalledAt, &m.Status); err != nil {
			return nil, fmt.Errorf("scan meter: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
