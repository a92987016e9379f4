package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type readingFixture struct {
	uc         *billing.RecordReadingUseCase
	customers  *fakeCustomerRepo
	meters     *fakeMeterRepo
	readings   *fakeReadingRepo
	bills      *fakeBillRepo
	settings   *fakeSettingRepo
	customerID string
	meterID    string
}

// newReadingFixture arma el caso de uso con un suscriptor y un medidor activos
// y tarifa por defecto 2000.00 fija + 350.00 por unidad.
func newReadingFixture(t *testing.T) *readingFixture {
	t.Helper()
	customers := newFakeCustomerRepo()
	meters := newFakeMeterRepo()
	readings := &fakeReadingRepo{}
	bills := &fakeBillRepo{}
	settings := &fakeSettingRepo{}

	customer := &entity.Customer{
		ID:        "cust-1",
		AccountNo: "0000001",
		Name:      "María Gómez",
		Balance:   decimal.Zero,
	}
	require.NoError(t, customers.Create(customer))
	meter := &entity.Meter{
		ID:         "meter-1",
		MeterNo:    "M-1001",
		CustomerID: customer.ID,
		Status:     entity.MeterStatusActive,
	}
	require.NoError(t, meters.Create(meter))

	txRunner := &fakeTxRunner{
		readingRepo:  readings,
		settingRepo:  settings,
		billRepo:     bills,
		customerRepo: customers,
	}
	uc := billing.NewRecordReadingUseCase(txRunner, meters, customers, readings, billing.Defaults{
		FixedCharge: dec("2000.00"),
		RatePerUnit: dec("350.00"),
	})
	return &readingFixture{
		uc:         uc,
		customers:  customers,
		meters:     meters,
		readings:   readings,
		bills:      bills,
		settings:   settings,
		customerID: customer.ID,
		meterID:    meter.ID,
	}
}

func (f *readingFixture) record(t *testing.T, date, value string) (*dto.RecordReadingResponse, error) {
	t.Helper()
	return f.uc.Record(context.Background(), dto.CreateReadingRequest{
		MeterID:      f.meterID,
		ReadingDate:  date,
		ReadingValue: decp(value),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo de consumo y factura
// ──────────────────────────────────────────────────────────────────────────────

// Lectura 100 → 150 con tarifa 2000 + 350/unidad:
// consumo 50, cargo variable 17500, total 19500.
func TestRecordReading_CalculaConsumoYFactura(t *testing.T) {
	f := newReadingFixture(t)

	first, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)
	// La primera factura se paga para aislar el cálculo de la segunda.
	require.NoError(t, f.bills.UpdateStatus(first.Bill.ID, entity.BillStatusPaid))

	out, err := f.record(t, "2025-02-15", "150")
	require.NoError(t, err)

	assert.True(t, out.Reading.Consumption.Equal(dec("50")),
		"consumo = lectura actual - anterior")
	assert.True(t, out.Bill.PreviousReading.Equal(dec("100")))
	assert.True(t, out.Bill.TotalReading.Equal(dec("150")))
	assert.True(t, out.Bill.VariableCharge.Equal(dec("17500")),
		"cargo variable = consumo × tarifa")
	assert.True(t, out.Bill.FixedCharge.Equal(dec("2000.00")))
	assert.True(t, out.Bill.AmountDue.Equal(dec("19500.00")),
		"total = fijo + variable")
	assert.Equal(t, entity.BillStatusUnpaid, out.Bill.Status)

	// El periodo arranca el día siguiente a la lectura anterior.
	assert.Equal(t, "2025-01-16", out.Bill.BillingStart)
	assert.Equal(t, "2025-02-15", out.Bill.BillingEnd)
}

// La primera lectura de un medidor liquida contra valor previo 0 y el periodo
// inicia en la fecha de la lectura misma.
func TestRecordReading_PrimeraLectura(t *testing.T) {
	f := newReadingFixture(t)

	out, err := f.record(t, "2025-03-10", "80")
	require.NoError(t, err)

	assert.True(t, out.Bill.PreviousReading.Equal(decimal.Zero))
	assert.True(t, out.Reading.Consumption.Equal(dec("80")))
	assert.Equal(t, "2025-03-10", out.Bill.BillingStart)
	assert.Equal(t, "2025-03-10", out.Bill.BillingEnd)
	assert.True(t, out.Bill.AmountDue.Equal(dec("30000.00")),
		"2000 + 80×350 = 30000")
}

// El saldo de facturas no pagadas rueda hacia la factura nueva y el saldo del
// suscriptor acumula ambas.
func TestRecordReading_ArrastraSaldoNoPagado(t *testing.T) {
	f := newReadingFixture(t)

	first, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)
	// 2000 + 100×350 = 37000
	require.True(t, first.Bill.AmountDue.Equal(dec("37000.00")))

	out, err := f.record(t, "2025-02-15", "150")
	require.NoError(t, err)

	// 2000 + 50×350 + 37000 pendientes = 56500
	assert.True(t, out.Bill.AmountDue.Equal(dec("56500.00")),
		"la factura nueva incluye el saldo no pagado")
	assert.True(t, out.CustomerBalance.Equal(dec("93500.00")),
		"el saldo del suscriptor acumula ambas facturas")
}

// Un pago intermedio deja la factura anterior en paid y la siguiente
// liquidación no la arrastra.
func TestRecordReading_FacturaPagadaNoSeArrastra(t *testing.T) {
	f := newReadingFixture(t)

	first, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)
	require.NoError(t, f.bills.UpdateStatus(first.Bill.ID, entity.BillStatusPaid))

	out, err := f.record(t, "2025-02-15", "150")
	require.NoError(t, err)
	assert.True(t, out.Bill.AmountDue.Equal(dec("19500.00")),
		"las facturas pagadas no ruedan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Un medidor acumulativo no retrocede: lectura menor que la anterior se
// rechaza y no se persiste nada.
func TestRecordReading_RegresionRechazada(t *testing.T) {
	f := newReadingFixture(t)

	_, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)

	_, err = f.record(t, "2025-02-15", "90")
	require.ErrorIs(t, err, domain.ErrReadingRegression)

	assert.Len(t, f.readings.readings, 1, "la lectura rechazada no se persiste")
	assert.Len(t, f.bills.bills, 1, "no se genera factura")
	customer, _ := f.customers.GetByID(f.customerID)
	assert.True(t, customer.Balance.Equal(dec("37000.00")),
		"el saldo no cambia en un rechazo")
}

// Una lectura igual a la anterior es consumo cero, no regresión.
func TestRecordReading_ConsumoCeroEsValido(t *testing.T) {
	f := newReadingFixture(t)

	_, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)

	out, err := f.record(t, "2025-02-15", "100")
	require.NoError(t, err)
	assert.True(t, out.Reading.Consumption.Equal(decimal.Zero))
	assert.True(t, out.Bill.VariableCharge.Equal(decimal.Zero))
}

// Segunda lectura del mismo medidor en la misma fecha → duplicado.
func TestRecordReading_FechaDuplicadaRechazada(t *testing.T) {
	f := newReadingFixture(t)

	_, err := f.record(t, "2025-01-15", "100")
	require.NoError(t, err)

	_, err = f.record(t, "2025-01-15", "120")
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRecordReading_EntradaInvalida(t *testing.T) {
	f := newReadingFixture(t)

	cases := []struct {
		name string
		in   dto.CreateReadingRequest
	}{
		{"sin meter_id", dto.CreateReadingRequest{ReadingDate: "2025-01-15", ReadingValue: decp("10")}},
		{"sin fecha", dto.CreateReadingRequest{MeterID: f.meterID, ReadingValue: decp("10")}},
		{"sin valor", dto.CreateReadingRequest{MeterID: f.meterID, ReadingDate: "2025-01-15"}},
		{"fecha inválida", dto.CreateReadingRequest{MeterID: f.meterID, ReadingDate: "15/01/2025", ReadingValue: decp("10")}},
		{"valor negativo", dto.CreateReadingRequest{MeterID: f.meterID, ReadingDate: "2025-01-15", ReadingValue: decp("-5")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Record(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordReading_MedidorInexistente(t *testing.T) {
	f := newReadingFixture(t)

	_, err := f.uc.Record(context.Background(), dto.CreateReadingRequest{
		MeterID:      "no-existe",
		ReadingDate:  "2025-01-15",
		ReadingValue: decp("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La fecha también se acepta como timestamp RFC 3339 (se normaliza a fecha).
func TestRecordReading_FechaRFC3339(t *testing.T) {
	f := newReadingFixture(t)

	out, err := f.record(t, "2025-01-15T10:30:00Z", "100")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", out.Reading.ReadingDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fecha límite de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestNextDueDate_Dia20DelMesSiguiente(t *testing.T) {
	from := time.Date(2025, time.March, 5, 14, 0, 0, 0, time.UTC)
	due := billing.NextDueDate(from)
	assert.Equal(t, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), due)
}

func TestNextDueDate_DiciembreRuedaDeAnio(t *testing.T) {
	from := time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC)
	due := billing.NextDueDate(from)
	assert.Equal(t, time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), due)
}
