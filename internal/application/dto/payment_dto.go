package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body para POST /api/payments. El cajero sale del token;
// Reference es opcional (se genera PMT-... si viene vacío).
type CreatePaymentRequest struct {
	BillID    string           `json:"bill_id"`
	Amount    *decimal.Decimal `json:"amount"`
	Method    string           `json:"method,omitempty"`
	Reference string           `json:"reference,omitempty"`
}

// PaymentResponse resultado del pago: número de comprobante, instantánea y
// nuevo saldo del suscriptor.
type PaymentResponse struct {
	Message     string          `json:"message"`
	ReceiptNo   string          `json:"receipt_no"`
	ReceiptData json.RawMessage `json:"receipt_data"`
	NewBalance  decimal.Decimal `json:"new_balance"`
}
