// Package analytics contiene el caso de uso del tablero de recaudo:
// totales generales y serie mensual pagado vs pendiente.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de cartera y la gráfica anual.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// No accede directamente a las tablas de facturas o pagos; delega todo en el
// repositorio.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountCustomers  → TotalCustomers
//  2. SumPayments     → TotalPaid
//  3. SumUnpaidBills  → TotalUnpaid
//  4. CountPayments   → TotalPayments
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	customersCh := make(chan countResult, 1)
	paymentsCh := make(chan countResult, 1)
	paidCh := make(chan sumResult, 1)
	unpaidCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountPayments(ctx)
		paymentsCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumPayments(ctx)
		paidCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumUnpaidBills(ctx)
		unpaidCh <- sumResult{total, err}
	}()

	customers := <-customersCh
	payments := <-paymentsCh
	paid := <-paidCh
	unpaid := <-unpaidCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de suscriptores: %w", customers.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de pagos: %w", payments.err)
	}
	if paid.err != nil {
		return nil, fmt.Errorf("dashboard: total recaudado: %w", paid.err)
	}
	if unpaid.err != nil {
		return nil, fmt.Errorf("dashboard: total pendiente: %w", unpaid.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalCustomers: customers.n,
		TotalPaid:      paid.total.Round(2),
		TotalUnpaid:    unpaid.total.Round(2),
		TotalPayments:  payments.n,
	}, nil
}

// GetMonthlyChart construye los 12 puntos de la gráfica del año indicado
// (año actual si year es 0). Los meses sin datos salen en cero.
func (uc *DashboardUseCase) GetMonthlyChart(ctx context.Context, year int) ([]dto.MonthlyChartPoint, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	type seriesResult struct {
		rows []repository.MonthlyAmount
		err  error
	}
	paidCh := make(chan seriesResult, 1)
	unpaidCh := make(chan seriesResult, 1)

	go func() {
		rows, err := uc.dashboardRepo.MonthlyPaid(ctx, year)
		paidCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashboardRepo.MonthlyUnpaid(ctx, year)
		unpaidCh <- seriesResult{rows, err}
	}()

	paid := <-paidCh
	unpaid := <-unpaidCh

	if paid.err != nil {
		return nil, fmt.Errorf("dashboard: serie de pagos: %w", paid.err)
	}
	if unpaid.err != nil {
		return nil, fmt.Errorf("dashboard: serie de pendientes: %w", unpaid.err)
	}

	points := make([]dto.MonthlyChartPoint, 12)
	for i := range points {
		points[i] = dto.MonthlyChartPoint{
			Month:  time.Month(i + 1).String()[:3],
			Paid:   decimal.Zero,
			Unpaid: decimal.Zero,
		}
	}
	for _, row := range paid.rows {
		if row.Month >= 1 && row.Month <= 12 {
			points[row.Month-1].Paid = row.Total.Round(2)
		}
	}
	for _, row := range unpaid.rows {
		if row.Month >= 1 && row.Month <= 12 {
			points[row.Month-1].Unpaid = row.Total.Round(2)
		}
	}
	return points, nil
}
