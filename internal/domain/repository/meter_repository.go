package repository

import "github.com/jhoicas/Acueducto-api/internal/domain/entity"

// MeterRepository define el puerto de persistencia para Meter.
type MeterRepository interface {
	Create(meter *entity.Meter) error
	GetByID(id string) (*entity.Meter, error)
	List() ([]*entity.Meter, error)
	ListByCustomer(customerID string) ([]*entity.Meter, error)
	// Search busca medidores por número de serie (ILIKE, máximo limit filas).
	Search(q string, limit int) ([]*entity.Meter, error)
}
