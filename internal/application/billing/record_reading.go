// Package billing contiene los casos de uso de liquidación: registro de
// lecturas (cálculo de consumo y factura), pagos, tarifa y listados.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// RecordReadingUseCase liquida una lectura de medidor: calcula el consumo
// contra la lectura anterior, aplica la tarifa vigente, arrastra el saldo
// de facturas no pagadas y fija la fecha límite de pago.
type RecordReadingUseCase struct {
	txRunner     ReadingTxRunner
	meterRepo    repository.MeterRepository
	customerRepo repository.CustomerRepository
	readingRepo  repository.ReadingRepository
	defaults     Defaults
}

// NewRecordReadingUseCase construye el caso de uso.
func NewRecordReadingUseCase(
	txRunner ReadingTxRunner,
	meterRepo repository.MeterRepository,
	customerRepo repository.CustomerRepository,
	readingRepo repository.ReadingRepository,
	defaults Defaults,
) *RecordReadingUseCase {
	return &RecordReadingUseCase{
		txRunner:     txRunner,
		meterRepo:    meterRepo,
		customerRepo: customerRepo,
		readingRepo:  readingRepo,
		defaults:     defaults,
	}
}

// Record registra la lectura y genera la factura en una sola transacción.
//
// Reglas:
//   - la lectura anterior es la más reciente con fecha estrictamente menor;
//     si no existe, el valor previo es 0 y el periodo inicia en la fecha de
//     la lectura misma;
//   - consumo = lectura actual - lectura anterior; un medidor acumulativo no
//     puede retroceder, así que un consumo negativo se rechaza;
//   - amount_due = cargo fijo + consumo × tarifa + saldo no pagado del
//     suscriptor (el saldo pendiente rueda a la factura más reciente);
//   - la fecha límite es el día 20 del mes siguiente a la fecha de
//     liquidación (no a la fecha de la lectura).
func (uc *RecordReadingUseCase) Record(ctx context.Context, in dto.CreateReadingRequest) (*dto.RecordReadingResponse, error) {
	if in.MeterID == "" || in.ReadingDate == "" || in.ReadingValue == nil {
		return nil, domain.ErrInvalidInput
	}
	readingDate, err := parseReadingDate(in.ReadingDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	currentValue := *in.ReadingValue
	if currentValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	meter, err := uc.meterRepo.GetByID(in.MeterID)
	if err != nil || meter == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(meter.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}

	// Lectura anterior: estrictamente antes de la fecha nueva.
	prev, err := uc.readingRepo.LatestBefore(meter.ID, readingDate)
	if err != nil {
		return nil, err
	}
	previousValue := decimal.Zero
	billingStart := readingDate
	if prev != nil {
		previousValue = prev.ReadingValue
		billingStart = prev.ReadingDate.AddDate(0, 0, 1)
	}

	consumption := currentValue.Sub(previousValue)
	if consumption.IsNegative() {
		return nil, domain.ErrReadingRegression
	}

	now := time.Now()
	reading := &entity.Reading{
		ID:           uuid.New().String(),
		MeterID:      meter.ID,
		ReadingDate:  readingDate,
		ReadingValue: currentValue,
		CreatedAt:    now,
	}

	var bill *entity.Bill
	var newBalance decimal.Decimal

	err = uc.txRunner.RunReading(ctx, func(
		readingRepo repository.ReadingRepository,
		settingRepo repository.BillingSettingRepository,
		billRepo repository.BillRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := readingRepo.Create(reading); err != nil {
			return err
		}

		setting, err := getOrCreateSetting(settingRepo, uc.defaults, now)
		if err != nil {
			return err
		}

		variableCharge := consumption.Mul(setting.RatePerUnit)
		amountDue := setting.FixedCharge.Add(variableCharge)

		// Arrastrar el saldo de facturas no pagadas hacia la factura nueva.
		unpaidTotal, err := billRepo.SumUnpaidByCustomer(customer.ID)
		if err != nil {
			return err
		}
		amountDue = amountDue.Add(unpaidTotal)

		bill = &entity.Bill{
			ID:              uuid.New().String(),
			CustomerID:      customer.ID,
			ReadingID:       reading.ID,
			BillingStart:    billingStart,
			BillingEnd:      readingDate,
			PreviousReading: previousValue,
			TotalReading:    currentValue,
			Consumption:     consumption,
			FixedCharge:     setting.FixedCharge,
			VariableCharge:  variableCharge,
			AmountDue:       amountDue,
			DueDate:         NextDueDate(now),
			Status:          entity.BillStatusUnpaid,
			CreatedAt:       now,
		}
		if err := billRepo.Create(bill); err != nil {
			return err
		}

		newBalance = customer.Balance.Add(amountDue)
		return customerRepo.UpdateBalance(customer.ID, newBalance)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordReadingResponse{
		Message: "Reading and Bill created successfully",
		Reading: dto.ReadingResponse{
			ID:           reading.ID,
			MeterID:      reading.MeterID,
			ReadingDate:  reading.ReadingDate.Format(dateLayout),
			ReadingValue: reading.ReadingValue,
			Consumption:  consumption,
		},
		Bill:            toBillResponse(bill, "", ""),
		CustomerBalance: newBalance,
	}, nil
}

// NextDueDate devuelve el día 20 del mes siguiente a from.
// Regla fija del ciclo de facturación.
func NextDueDate(from time.Time) time.Time {
	year, month := from.Year(), int(from.Month())
	month++
	if month > 12 {
		month = 1
		year++
	}
	return time.Date(year, time.Month(month), 20, 0, 0, 0, 0, from.Location())
}

// parseReadingDate acepta YYYY-MM-DD o un timestamp RFC 3339 y devuelve
// solo la fecha (medianoche UTC).
func parseReadingDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// getOrCreateSetting devuelve la tarifa vigente, sembrándola con los valores
// por defecto la primera vez.
func getOrCreateSetting(repo repository.BillingSettingRepository, defaults Defaults, now time.Time) (*entity.BillingSetting, error) {
	setting, err := repo.Get()
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return setting, nil
	}
	setting = &entity.BillingSetting{
		ID:          uuid.New().String(),
		FixedCharge: defaults.FixedCharge,
		RatePerUnit: defaults.RatePerUnit,
		UpdatedAt:   now,
	}
	if err := repo.Create(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func toBillResponse(b *entity.Bill, customerName, meterNo string) dto.BillResponse {
	return dto.BillResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ReadingID:       b.ReadingID,
		MeterNo:         meterNo,
		Customer:        customerName,
		BillingStart:    b.BillingStart.Format(dateLayout),
		BillingEnd:      b.BillingEnd.Format(dateLayout),
		PreviousReading: b.PreviousReading,
		TotalReading:    b.TotalReading,
		Consumption:     b.Consumption,
		FixedCharge:     b.FixedCharge,
		VariableCharge:  b.VariableCharge,
		AmountDue:       b.AmountDue,
		DueDate:         b.DueDate.Format(dateLayout),
		Status:          b.Status,
	}
}
