package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago aplicado a una factura. Inmutable.
type Payment struct {
	ID          string
	BillID      string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      string // Cash, Transfer, ...
	Reference   string // generado (PMT-...) si el cliente no envía uno
	RecordedBy  string // UserID del cajero
}
