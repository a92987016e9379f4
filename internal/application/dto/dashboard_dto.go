package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO totales generales de recaudo.
type DashboardSummaryDTO struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalUnpaid    decimal.Decimal `json:"total_unpaid"`
	TotalPayments  int64           `json:"total_payments"`
}

// MonthlyChartPoint pagado vs pendiente de un mes (para la gráfica anual).
type MonthlyChartPoint struct {
	Month  string          `json:"month"` // "Jan", "Feb", ...
	Paid   decimal.Decimal `json:"paid"`
	Unpaid decimal.Decimal `json:"unpaid"`
}
