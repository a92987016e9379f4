package entity

import "time"

// Estados de un medidor.
const (
	MeterStatusActive   = "active"
	MeterStatusInactive = "inactive"
)

// Meter representa un medidor físico instalado para un suscriptor.
type Meter struct {
	ID          string
	MeterNo     string // número de serie, único
	CustomerID  string
	InstalledAt *time.Time // nil si no se registró la fecha de instalación
	Status      string     // active, inactive
}
