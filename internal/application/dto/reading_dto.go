package dto

import "github.com/shopspring/decimal"

// CreateReadingRequest body para POST /api/readings.
// ReadingDate acepta YYYY-MM-DD o timestamp RFC 3339.
// ReadingValue es puntero para distinguir "ausente" de cero.
type CreateReadingRequest struct {
	MeterID      string           `json:"meter_id"`
	ReadingDate  string           `json:"reading_date"`
	ReadingValue *decimal.Decimal `json:"reading_value"`
}

// ReadingResponse lectura creada (valores decimales como string).
type ReadingResponse struct {
	ID           string          `json:"id"`
	MeterID      string          `json:"meter_id"`
	ReadingDate  string          `json:"reading_date"`
	ReadingValue decimal.Decimal `json:"reading_value"`
	Consumption  decimal.Decimal `json:"consumption"`
}

// BillResponse factura en respuestas (valores decimales como string).
type BillResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	ReadingID       string          `json:"reading_id,omitempty"`
	MeterNo         string          `json:"meter_number,omitempty"`
	Customer        string          `json:"customer,omitempty"`
	BillingStart    string          `json:"billing_start"`
	BillingEnd      string          `json:"billing_end"`
	PreviousReading decimal.Decimal `json:"previous_reading"`
	TotalReading    decimal.Decimal `json:"total_reading"`
	Consumption     decimal.Decimal `json:"consumption"`
	FixedCharge     decimal.Decimal `json:"fixed_charge"`
	VariableCharge  decimal.Decimal `json:"variable_charge"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	DueDate         string          `json:"due_date"`
	Status          string          `json:"status"`
}

// RecordReadingResponse resultado atómico de registrar una lectura:
// la lectura, la factura derivada y el nuevo saldo del suscriptor.
type RecordReadingResponse struct {
	Message         string          `json:"message"`
	Reading         ReadingResponse `json:"reading"`
	Bill            BillResponse    `json:"bill"`
	CustomerBalance decimal.Decimal `json:"customer_balance"`
}
