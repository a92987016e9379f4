package dto

import "encoding/json"

// ReceiptResponse comprobante en respuestas.
type ReceiptResponse struct {
	ID          string          `json:"id"`
	PaymentID   string          `json:"payment_id"`
	ReceiptNo   string          `json:"receipt_no"`
	IssuedAt    string          `json:"issued_at"`
	ReceiptData json.RawMessage `json:"receipt_data"`
}
