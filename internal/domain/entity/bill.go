package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

// Bill representa la factura derivada de una lectura.
//
// AmountDue incluye el saldo de facturas anteriores no pagadas del mismo
// suscriptor (el saldo pendiente "rueda" hacia la factura más reciente).
// Solo muta el Status (unpaid -> paid) al registrar un pago.
type Bill struct {
	ID              string
	CustomerID      string
	ReadingID       string
	BillingStart    time.Time
	BillingEnd      time.Time
	PreviousReading decimal.Decimal
	TotalReading    decimal.Decimal
	Consumption     decimal.Decimal // TotalReading - PreviousReading, nunca negativo
	FixedCharge     decimal.Decimal
	VariableCharge  decimal.Decimal // Consumption × rate_per_unit
	AmountDue       decimal.Decimal
	DueDate         time.Time // día 20 del mes siguiente al de liquidación
	Status          string    // unpaid, paid
	CreatedAt       time.Time
}
