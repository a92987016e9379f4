package billing

import (
	"time"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// SettingsUseCase consulta y actualización de la tarifa vigente.
// La fila se crea con los valores por defecto la primera vez que se consulta.
type SettingsUseCase struct {
	repo     repository.BillingSettingRepository
	defaults Defaults
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.BillingSettingRepository, defaults Defaults) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults}
}

// Get devuelve la tarifa vigente (la siembra si no existe).
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	setting, err := getOrCreateSetting(uc.repo, uc.defaults, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		ID:          setting.ID,
		FixedCharge: setting.FixedCharge,
		RatePerUnit: setting.RatePerUnit,
		UpdatedAt:   setting.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Update aplica un cambio parcial de tarifa. Sin historial: el cambio rige
// para las liquidaciones siguientes y no recalcula facturas pasadas.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.FixedCharge == nil && in.RatePerUnit == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.FixedCharge != nil && in.FixedCharge.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.RatePerUnit != nil && in.RatePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	setting, err := getOrCreateSetting(uc.repo, uc.defaults, now)
	if err != nil {
		return nil, err
	}
	if in.FixedCharge != nil {
		setting.FixedCharge = *in.FixedCharge
	}
	if in.RatePerUnit != nil {
		setting.RatePerUnit = *in.RatePerUnit
	}
	setting.UpdatedAt = now
	if err := uc.repo.Update(setting); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		ID:          setting.ID,
		FixedCharge: setting.FixedCharge,
		RatePerUnit: setting.RatePerUnit,
		UpdatedAt:   setting.UpdatedAt.Format(time.RFC3339),
	}, nil
}
