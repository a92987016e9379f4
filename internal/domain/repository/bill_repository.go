package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// BillRow es una factura junto con los datos del suscriptor y el medidor
// que necesitan los listados (evita N+1 sobre el grafo de entidades).
type BillRow struct {
	Bill         entity.Bill
	CustomerName string
	MeterNo      string
}

// BillRepository define el puerto de persistencia para Bill.
type BillRepository interface {
	Create(bill *entity.Bill) error
	GetByID(id string) (*entity.Bill, error)
	// ListWithContext lista todas las facturas con nombre de suscriptor y
	// número de medidor, ordenadas por fecha de fin de periodo.
	ListWithContext() ([]*BillRow, error)
	// SumUnpaidByCustomer suma amount_due de las facturas no pagadas del
	// suscriptor (cero si no hay).
	SumUnpaidByCustomer(customerID string) (decimal.Decimal, error)
	UpdateStatus(id, status string) error
}
