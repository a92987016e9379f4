package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// PaymentUseCase registra pagos: marca la factura como pagada, descuenta el
// saldo del suscriptor (con piso en cero) y emite el comprobante, todo dentro
// de una transacción.
type PaymentUseCase struct {
	txRunner     PaymentTxRunner
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner PaymentTxRunner,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:     txRunner,
		billRepo:     billRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// Record aplica un pago a la factura. El cajero (userID) viene del token.
func (uc *PaymentUseCase) Record(ctx context.Context, userID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.BillID == "" || in.Amount == nil || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil, domain.ErrUserNotFound
	}
	bill, err := uc.billRepo.GetByID(in.BillID)
	if err != nil || bill == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(bill.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}

	amount := *in.Amount
	method := in.Method
	if method == "" {
		method = "Cash"
	}
	now := time.Now()
	reference := in.Reference
	if reference == "" {
		reference = paymentReference(now)
	}

	// El saldo nunca queda negativo: el descuento se limita al saldo actual.
	newBalance := customer.Balance.Sub(amount)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}

	cashier := user.Name
	if cashier == "" {
		cashier = user.Username
	}
	receiptNo := fmt.Sprintf("WBS-%s", now.Format("20060102-150405"))
	snapshot, err := json.Marshal(entity.ReceiptSnapshot{
		Customer:   customer.Name,
		BillID:     bill.ID,
		AmountPaid: amount.StringFixed(2),
		Method:     method,
		Cashier:    cashier,
		Datetime:   now.Format(time.RFC3339),
		Reference:  reference,
	})
	if err != nil {
		return nil, fmt.Errorf("serializar comprobante: %w", err)
	}

	payment := &entity.Payment{
		ID:          uuid.New().String(),
		BillID:      bill.ID,
		Amount:      amount,
		PaymentDate: now,
		Method:      method,
		Reference:   reference,
		RecordedBy:  user.ID,
	}
	receipt := &entity.Receipt{
		ID:        uuid.New().String(),
		PaymentID: payment.ID,
		ReceiptNo: receiptNo,
		IssuedAt:  now,
		Snapshot:  snapshot,
	}

	err = uc.txRunner.RunPayment(ctx, func(
		paymentRepo repository.PaymentRepository,
		billRepo repository.BillRepository,
		customerRepo repository.CustomerRepository,
		receiptRepo repository.ReceiptRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		if err := billRepo.UpdateStatus(bill.ID, entity.BillStatusPaid); err != nil {
			return err
		}
		if err := customerRepo.UpdateBalance(customer.ID, newBalance); err != nil {
			return err
		}
		return receiptRepo.Create(receipt)
	})
	if err != nil {
		return nil, err
	}

	return &dto.PaymentResponse{
		Message:     "Payment successful",
		ReceiptNo:   receiptNo,
		ReceiptData: snapshot,
		NewBalance:  newBalance,
	}, nil
}

// paymentReference genera una referencia legible: PMT-<timestamp>-<6 hex>.
func paymentReference(now time.Time) string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("PMT-%s-%s", now.Format("20060102150405"), entropy)
}
