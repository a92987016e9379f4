package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingSetting es la tarifa vigente: cargo fijo + valor por unidad.
// Existe una sola fila, mutable y sin historial; los cambios aplican a las
// liquidaciones futuras y no recalculan facturas pasadas.
type BillingSetting struct {
	ID          string
	FixedCharge decimal.Decimal
	RatePerUnit decimal.Decimal
	UpdatedAt   time.Time
}
