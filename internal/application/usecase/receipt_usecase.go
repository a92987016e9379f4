package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// ReceiptPDFGenerator puerto para la representación gráfica del comprobante.
// Implementado en infrastructure/pdf con Maroto.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *entity.Receipt, snapshot *entity.ReceiptSnapshot) ([]byte, error)
}

// ReceiptUseCase consulta de comprobantes y descarga en PDF.
// Los comprobantes son inmutables: solo lectura.
type ReceiptUseCase struct {
	repo   repository.ReceiptRepository
	pdfGen ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.ReceiptRepository, pdfGen ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, pdfGen: pdfGen}
}

// List lista todos los comprobantes (más recientes primero).
func (uc *ReceiptUseCase) List() ([]*dto.ReceiptResponse, error) {
	receipts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		result = append(result, toReceiptResponse(r))
	}
	return result, nil
}

// GetByID obtiene un comprobante por ID.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	return toReceiptResponse(receipt), nil
}

// GeneratePDF genera la representación PDF del comprobante.
func (uc *ReceiptUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, string, error) {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if receipt == nil {
		return nil, "", domain.ErrNotFound
	}
	var snapshot entity.ReceiptSnapshot
	if err := json.Unmarshal(receipt.Snapshot, &snapshot); err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGen.GenerateReceiptPDF(ctx, receipt, &snapshot)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, receipt.ReceiptNo + ".pdf", nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:          r.ID,
		PaymentID:   r.PaymentID,
		ReceiptNo:   r.ReceiptNo,
		IssuedAt:    r.IssuedAt.Format(time.RFC3339),
		ReceiptData: r.Snapshot,
	}
}
