package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// BillsUseCase listados de facturas para la vista de cartera.
type BillsUseCase struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
}

// NewBillsUseCase construye el caso de uso.
func NewBillsUseCase(billRepo repository.BillRepository, customerRepo repository.CustomerRepository) *BillsUseCase {
	return &BillsUseCase{billRepo: billRepo, customerRepo: customerRepo}
}

// ListGrouped agrupa todas las facturas por suscriptor: total pendiente
// (solo facturas no pagadas), periodo cubierto y detalle de cada factura.
func (uc *BillsUseCase) ListGrouped() ([]*dto.CustomerBillsResponse, error) {
	rows, err := uc.billRepo.ListWithContext()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*dto.CustomerBillsResponse)
	var order []string
	starts := make(map[string]entity.Bill) // factura con periodo más temprano y más tardío por suscriptor
	ends := make(map[string]entity.Bill)

	for _, row := range rows {
		b := row.Bill
		group, ok := groups[b.CustomerID]
		if !ok {
			group = &dto.CustomerBillsResponse{
				CustomerID:     b.CustomerID,
				Customer:       row.CustomerName,
				TotalAmountDue: decimal.Zero,
			}
			groups[b.CustomerID] = group
			order = append(order, b.CustomerID)
			starts[b.CustomerID] = b
			ends[b.CustomerID] = b
		}
		if b.BillingStart.Before(starts[b.CustomerID].BillingStart) {
			starts[b.CustomerID] = b
		}
		if b.BillingEnd.After(ends[b.CustomerID].BillingEnd) {
			ends[b.CustomerID] = b
		}
		if b.Status == entity.BillStatusUnpaid {
			group.TotalAmountDue = group.TotalAmountDue.Add(b.AmountDue)
		}
		group.Bills = append(group.Bills, toBillResponse(&b, row.CustomerName, row.MeterNo))
	}

	result := make([]*dto.CustomerBillsResponse, 0, len(order))
	for _, id := range order {
		group := groups[id]
		group.BillingPeriod = starts[id].BillingStart.Format(dateLayout) +
			" - " + ends[id].BillingEnd.Format(dateLayout)
		result = append(result, group)
	}
	return result, nil
}

// Get devuelve una factura por ID con el nombre del suscriptor.
func (uc *BillsUseCase) Get(id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil || bill == nil {
		return nil, domain.ErrNotFound
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(bill.CustomerID); customer != nil {
		customerName = customer.Name
	}
	resp := toBillResponse(bill, customerName, "")
	return &resp, nil
}
