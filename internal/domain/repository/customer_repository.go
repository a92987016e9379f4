package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// LastAccountNo devuelve el número de cuenta más alto asignado
	// ("" si no hay suscriptores). Se usa para generar el consecutivo.
	LastAccountNo() (string, error)
	List(limit, offset int) ([]*entity.Customer, error)
	// Search busca por nombre, número de cuenta o número de medidor (ILIKE).
	Search(q string) ([]*entity.Customer, error)
	// UpdateBalance fija el saldo del suscriptor (se llama dentro de una tx
	// junto con la creación de la factura o del pago).
	UpdateBalance(id string, balance decimal.Decimal) error
}
