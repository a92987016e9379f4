package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// El número de cuenta se genera automáticamente (consecutivo de 7 dígitos).
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CustomerResponse suscriptor en respuestas. Balance viaja como string
// (serialización por defecto de shopspring/decimal).
type CustomerResponse struct {
	ID        string          `json:"id"`
	AccountNo string          `json:"account_no"`
	Name      string          `json:"name"`
	Address   string          `json:"address,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
}

// CustomerSearchResult resultado de búsqueda con los medidores del suscriptor.
type CustomerSearchResult struct {
	CustomerResponse
	Meters []string `json:"meters"`
}
