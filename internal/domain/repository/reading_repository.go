package repository

import (
	"time"

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// ReadingRepository define el puerto de persistencia para Reading.
type ReadingRepository interface {
	Create(reading *entity.Reading) error
	// LatestBefore devuelve la lectura más reciente del medidor con fecha
	// estrictamente anterior a date (nil si no existe).
	LatestBefore(meterID string, date time.Time) (*entity.Reading, error)
	GetByID(id string) (*entity.Reading, error)
}
