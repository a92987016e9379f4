package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
)

func newSettingsUC(repo *fakeSettingRepo) *billing.SettingsUseCase {
	return billing.NewSettingsUseCase(repo, billing.Defaults{
		FixedCharge: dec("2000.00"),
		RatePerUnit: dec("350.00"),
	})
}

// La primera consulta siembra la fila con la tarifa por defecto.
func TestSettings_GetSiembraPorDefecto(t *testing.T) {
	repo := &fakeSettingRepo{}
	uc := newSettingsUC(repo)

	out, err := uc.Get()
	require.NoError(t, err)

	assert.True(t, out.FixedCharge.Equal(dec("2000.00")))
	assert.True(t, out.RatePerUnit.Equal(dec("350.00")))
	require.NotNil(t, repo.setting, "la fila debe quedar persistida")
}

// Update parcial: solo cambia el campo enviado.
func TestSettings_UpdateParcial(t *testing.T) {
	repo := &fakeSettingRepo{}
	uc := newSettingsUC(repo)

	out, err := uc.Update(dto.UpdateSettingsRequest{RatePerUnit: decp("400.00")})
	require.NoError(t, err)

	assert.True(t, out.FixedCharge.Equal(dec("2000.00")), "el cargo fijo no cambia")
	assert.True(t, out.RatePerUnit.Equal(dec("400.00")))
}

func TestSettings_UpdateRechazos(t *testing.T) {
	uc := newSettingsUC(&fakeSettingRepo{})

	_, err := uc.Update(dto.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "al menos un campo es requerido")

	_, err = uc.Update(dto.UpdateSettingsRequest{FixedCharge: decp("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(dto.UpdateSettingsRequest{RatePerUnit: decp("-0.5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
