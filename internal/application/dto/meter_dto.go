package dto

// CreateMeterRequest body para POST /api/meters.
// InstalledAt en formato YYYY-MM-DD (opcional).
type CreateMeterRequest struct {
	MeterNo     string `json:"meter_no"`
	CustomerID  string `json:"customer_id"`
	InstalledAt string `json:"installed_at,omitempty"`
	Status      string `json:"status"`
}

// MeterResponse medidor en respuestas.
type MeterResponse struct {
	ID          string `json:"id"`
	MeterNo     string `json:"meter_no"`
	CustomerID  string `json:"customer_id"`
	InstalledAt string `json:"installed_at,omitempty"`
	Status      string `json:"status"`
}
