package billing_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de liquidación
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) LastAccountNo() (string, error) {
	last := ""
	for _, c := range f.customers {
		if c.AccountNo > last {
			last = c.AccountNo
		}
	}
	return last, nil
}

func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	result := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCustomerRepo) Search(q string) ([]*entity.Customer, error) {
	var result []*entity.Customer
	for _, c := range f.customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	c, ok := f.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = balance
	return nil
}

type fakeMeterRepo struct {
	meters map[string]*entity.Meter
}

func newFakeMeterRepo() *fakeMeterRepo {
	return &fakeMeterRepo{meters: map[string]*entity.Meter{}}
}

func (f *fakeMeterRepo) Create(m *entity.Meter) error {
	f.meters[m.ID] = m
	return nil
}

func (f *fakeMeterRepo) GetByID(id string) (*entity.Meter, error) {
	return f.meters[id], nil
}

func (f *fakeMeterRepo) List() ([]*entity.Meter, error) {
	result := make([]*entity.Meter, 0, len(f.meters))
	for _, m := range f.meters {
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeMeterRepo) ListByCustomer(customerID string) ([]*entity.Meter, error) {
	var result []*entity.Meter
	for _, m := range f.meters {
		if m.CustomerID == customerID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeterRepo) Search(q string, limit int) ([]*entity.Meter, error) {
	var result []*entity.Meter
	for _, m := range f.meters {
		if strings.Contains(m.MeterNo, q) && len(result) < limit {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeReadingRepo struct {
	readings []*entity.Reading
}

func (f *fakeReadingRepo) Create(r *entity.Reading) error {
	for _, existing := range f.readings {
		if existing.MeterID == r.MeterID && existing.ReadingDate.Equal(r.ReadingDate) {
			return domain.ErrDuplicate
		}
	}
	f.readings = append(f.readings, r)
	return nil
}

func (f *fakeReadingRepo) LatestBefore(meterID string, date time.Time) (*entity.Reading, error) {
	var latest *entity.Reading
	for _, r := range f.readings {
		if r.MeterID != meterID || !r.ReadingDate.Before(date) {
			continue
		}
		if latest == nil || r.ReadingDate.After(latest.ReadingDate) {
			latest = r
		}
	}
	return latest, nil
}

func (f *fakeReadingRepo) GetByID(id string) (*entity.Reading, error) {
	for _, r := range f.readings {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

type fakeBillRepo struct {
	bills []*entity.Bill
}

func (f *fakeBillRepo) Create(b *entity.Bill) error {
	f.bills = append(f.bills, b)
	return nil
}

func (f *fakeBillRepo) GetByID(id string) (*entity.Bill, error) {
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) ListWithContext() ([]*repository.BillRow, error) {
	result := make([]*repository.BillRow, 0, len(f.bills))
	for _, b := range f.bills {
		result = append(result, &repository.BillRow{Bill: *b})
	}
	return result, nil
}

func (f *fakeBillRepo) SumUnpaidByCustomer(customerID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range f.bills {
		if b.CustomerID == customerID && b.Status == entity.BillStatusUnpaid {
			total = total.Add(b.AmountDue)
		}
	}
	return total, nil
}

func (f *fakeBillRepo) UpdateStatus(id, status string) error {
	for _, b := range f.bills {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSettingRepo struct {
	setting *entity.BillingSetting
}

func (f *fakeSettingRepo) Get() (*entity.BillingSetting, error) {
	return f.setting, nil
}

func (f *fakeSettingRepo) Create(s *entity.BillingSetting) error {
	f.setting = s
	return nil
}

func (f *fakeSettingRepo) Update(s *entity.BillingSetting) error {
	f.setting = s
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	f.receipts = append(f.receipts, r)
	return nil
}

func (f *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) List() ([]*entity.Receipt, error) {
	return f.receipts, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// fakeTxRunner pasa los mismos fakes al callback (sin semántica transaccional;
// los tests verifican el orden y los datos, no el rollback de Postgres).
type fakeTxRunner struct {
	readingRepo  *fakeReadingRepo
	settingRepo  *fakeSettingRepo
	billRepo     *fakeBillRepo
	customerRepo *fakeCustomerRepo
	paymentRepo  *fakePaymentRepo
	receiptRepo  *fakeReceiptRepo
}

func (f *fakeTxRunner) RunReading(_ context.Context, fn func(
	readingRepo repository.ReadingRepository,
	settingRepo repository.BillingSettingRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(f.readingRepo, f.settingRepo, f.billRepo, f.customerRepo)
}

func (f *fakeTxRunner) RunPayment(_ context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	return fn(f.paymentRepo, f.billRepo, f.customerRepo, f.receiptRepo)
}
