package repository

import "github.com/jhoicas/Acueducto-api/internal/domain/entity"

// BillingSettingRepository define el puerto de persistencia para la tarifa vigente.
// Hay una sola fila; Get devuelve nil si todavía no existe.
type BillingSettingRepository interface {
	Get() (*entity.BillingSetting, error)
	Create(setting *entity.BillingSetting) error
	Update(setting *entity.BillingSetting) error
}
