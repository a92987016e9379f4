package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

func billOn(id, customerID string, start, end string, amount string, status string) *entity.Bill {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return &entity.Bill{
		ID:           id,
		CustomerID:   customerID,
		BillingStart: s,
		BillingEnd:   e,
		AmountDue:    dec(amount),
		Status:       status,
	}
}

// El listado agrupa por suscriptor: solo las facturas no pagadas suman al
// total y el periodo cubre desde la más antigua hasta la más reciente.
func TestBills_ListGrouped(t *testing.T) {
	bills := &fakeBillRepo{}
	customers := newFakeCustomerRepo()
	require.NoError(t, bills.Create(billOn("b1", "cust-1", "2025-01-16", "2025-02-15", "19500", entity.BillStatusPaid)))
	require.NoError(t, bills.Create(billOn("b2", "cust-1", "2025-02-16", "2025-03-15", "21000", entity.BillStatusUnpaid)))
	require.NoError(t, bills.Create(billOn("b3", "cust-2", "2025-03-01", "2025-03-31", "5000", entity.BillStatusUnpaid)))

	uc := billing.NewBillsUseCase(bills, customers)
	groups, err := uc.ListGrouped()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var cust1Total, cust2Total string
	for _, g := range groups {
		switch g.CustomerID {
		case "cust-1":
			cust1Total = g.TotalAmountDue.String()
			assert.Len(t, g.Bills, 2)
			assert.Equal(t, "2025-01-16 - 2025-03-15", g.BillingPeriod)
		case "cust-2":
			cust2Total = g.TotalAmountDue.String()
			assert.Len(t, g.Bills, 1)
		}
	}
	assert.Equal(t, "21000", cust1Total, "la factura pagada no suma al total pendiente")
	assert.Equal(t, "5000", cust2Total)
}

func TestBills_GetInexistente(t *testing.T) {
	uc := billing.NewBillsUseCase(&fakeBillRepo{}, newFakeCustomerRepo())
	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
