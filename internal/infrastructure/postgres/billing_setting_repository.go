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

var _ repository.BillingSettingRepository = (*BillingSettingRepo)(nil)

// BillingSettingRepo implementación de BillingSettingRepository (usable con pool o tx).
type BillingSettingRepo struct {
	q Querier
}

// NewBillingSettingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillingSettingRepository(q Querier) *BillingSettingRepo {
	return &BillingSettingRepo{q: q}
}

// Get devuelve la fila de tarifa vigente (nil si todavía no existe).
func (r *BillingSettingRepo) Get() (*entity.BillingSetting, error) {
	query := `
		SELECT id, fixed_charge, rate_per_unit, updated_at
		FROM billing_settings ORDER BY id LIMIT 1`
	var s entity.BillingSetting
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.FixedCharge, &s.RatePerUnit, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get billing setting: %w", err)
	}
	return &s, nil
}

// Create persiste la fila de tarifa (solo se llama la primera vez).
func (r *BillingSettingRepo) Create(setting *entity.BillingSetting) error {
	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}
	query := `
		INSERT INTO billing_settings (id, fixed_charge, rate_per_unit, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		setting.ID, setting.FixedCharge, setting.RatePerUnit, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert billing setting: %w", err)
	}
	return nil
}

// Update actualiza la tarifa vigente. No hay historial: el cambio aplica a
// las liquidaciones futuras y las facturas pasadas no se recalculan.
func (r *BillingSettingRepo) Update(setting *entity.BillingSetting) error {
	query := `
		UPDATE billing_settings SET fixed_charge = $2, rate_per_unit = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		setting.ID, setting.FixedCharge, setting.RatePerUnit, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update billing setting: %w", err)
	}
	return nil
}
