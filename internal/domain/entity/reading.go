package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reading representa una medición acumulada de un medidor en una fecha.
// Es inmutable: se crea una vez y nunca se actualiza.
// La pareja (meter_id, reading_date) es única.
type Reading struct {
	ID           string
	MeterID      string
	ReadingDate  time.Time // solo fecha, sin hora
	ReadingValue decimal.Decimal
	CreatedAt    time.Time
}
