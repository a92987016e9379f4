package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un suscriptor del acueducto.
// Balance es la suma de las facturas no pagadas; nunca queda negativo.
type Customer struct {
	ID        string
	AccountNo string // consecutivo de 7 dígitos, único
	Name      string
	Address   string
	Phone     string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
}
