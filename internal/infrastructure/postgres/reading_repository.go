package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.ReadingRepository = (*ReadingRepo)(nil)

// ReadingRepo implementación de ReadingRepository (usable con pool o tx).
type ReadingRepo struct {
	q Querier
}

// NewReadingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReadingRepository(q Querier) *ReadingRepo {
	return &ReadingRepo{q: q}
}

// Create persiste una lectura. La tabla tiene UNIQUE (meter_id, reading_date):
// dos lecturas del mismo medidor en la misma fecha dejarían ambigua la
// "lectura anterior", así que la violación se reporta como ErrDuplicate.
func (r *ReadingRepo) Create(reading *entity.Reading) error {
	if reading.ID == "" {
		reading.ID = uuid.New().String()
	}
	query := `
		INSERT INTO readings (id, meter_id, reading_date, reading_value, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		reading.ID, reading.MeterID, reading.ReadingDate, reading.ReadingValue, reading.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

// LatestBefore devuelve la lectura más reciente con fecha estrictamente
// anterior a date (nil si el medidor no tiene lecturas previas).
func (r *ReadingRepo) LatestBefore(meterID string, date time.Time) (*entity.Reading, error) {
	query := `
		SELECT id, meter_id, reading_date, reading_value, created_at
		FROM readings
		WHERE meter_id = $1 AND reading_date < $2
		ORDER BY reading_date DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, meterID, date))
}

// GetByID obtiene una lectura por ID.
func (r *ReadingRepo) GetByID(id string) (*entity.Reading, error) {
	query := `
		SELECT id, meter_id, reading_date, reading_value, created_at
		FROM readings WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ReadingRepo) scanOne(row pgx.Row) (*entity.Reading, error) {
	var rd entity.Reading
	err := row.Scan(&rd.ID, &rd.MeterID, &rd.ReadingDate, &rd.ReadingValue, &rd.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reading: %w", err)
	}
	return &rd, nil
}
