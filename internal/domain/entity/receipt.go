package entity

import (
	"encoding/json"
	"time"
)

// Receipt es el comprobante emitido tras un pago: una instantánea
// desnormalizada de la transacción. Inmutable.
type Receipt struct {
	ID        string
	PaymentID string
	ReceiptNo string // WBS-YYYYMMDD-HHMMSS, único
	IssuedAt  time.Time
	Snapshot  json.RawMessage // cliente, factura, monto, método, cajero, referencia
}

// ReceiptSnapshot es el contenido del comprobante tal como se congela al pagar.
type ReceiptSnapshot struct {
	Customer   string `json:"customer"`
	BillID     string `json:"bill_id"`
	AmountPaid string `json:"amount_paid"`
	Method     string `json:"method"`
	Cashier    string `json:"cashier"`
	Datetime   string `json:"datetime"`
	Reference  string `json:"reference"`
}
