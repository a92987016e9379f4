package dto

import "github.com/shopspring/decimal"

// CustomerBillsResponse facturas de un suscriptor agrupadas para el listado
// GET /api/billing/bills: total pendiente y periodo cubierto.
type CustomerBillsResponse struct {
	CustomerID     string          `json:"customer_id"`
	Customer       string          `json:"customer"`
	TotalAmountDue decimal.Decimal `json:"total_amount_due"`
	BillingPeriod  string          `json:"billing_period,omitempty"` // "YYYY-MM-DD - YYYY-MM-DD"
	Bills          []BillResponse  `json:"bills"`
}

// SettingsResponse tarifa vigente.
type SettingsResponse struct {
	ID          string          `json:"id"`
	FixedCharge decimal.Decimal `json:"fixed_charge"`
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
	UpdatedAt   string          `json:"updated_at"`
}

// UpdateSettingsRequest body para PUT /api/billing_settings (campos opcionales,
// el que no venga conserva su valor actual).
type UpdateSettingsRequest struct {
	FixedCharge *decimal.Decimal `json:"fixed_charge,omitempty"`
	RatePerUnit *decimal.Decimal `json:"rate_per_unit,omitempty"`
}
