package repository

import "github.com/jhoicas/Acueducto-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	List() ([]*entity.Receipt, error)
}
