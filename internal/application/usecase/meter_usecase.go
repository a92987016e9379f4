package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

const meterSearchLimit = 10

// MeterUseCase casos de uso para medidores.
type MeterUseCase struct {
	repo         repository.MeterRepository
	customerRepo repository.CustomerRepository
}

// NewMeterUseCase construye el caso de uso.
func NewMeterUseCase(repo repository.MeterRepository, customerRepo repository.CustomerRepository) *MeterUseCase {
	return &MeterUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un medidor para un suscriptor existente.
func (uc *MeterUseCase) Create(in dto.CreateMeterRequest) (*dto.MeterResponse, error) {
	if in.MeterNo == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	var installedAt *time.Time
	if in.InstalledAt != "" {
		t, err := time.Parse("2006-01-02", in.InstalledAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		installedAt = &t
	}
	status := in.Status
	if status == "" {
		status = entity.MeterStatusActive
	}
	if status != entity.MeterStatusActive && status != entity.MeterStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	meter := &entity.Meter{
		ID:          uuid.New().String(),
		MeterNo:     in.MeterNo,
		CustomerID:  in.CustomerID,
		InstalledAt: installedAt,
		Status:      status,
	}
	if err := uc.repo.Create(meter); err != nil {
		return nil, err
	}
	return toMeterResponse(meter), nil
}

// List lista todos los medidores.
func (uc *MeterUseCase) List() ([]*dto.MeterResponse, error) {
	meters, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	result := make([]*dto.MeterResponse, 0, len(meters))
	for _, m := range meters {
		result = append(result, toMeterResponse(m))
	}
	return result, nil
}

// Search busca medidores por número de serie (máximo 10 resultados, para el
// autocompletado del punto de captura).
func (uc *MeterUseCase) Search(q string) ([]*dto.MeterResponse, error) {
	if q == "" {
		return []*dto.MeterResponse{}, nil
	}
	meters, err := uc.repo.Search(q, meterSearchLimit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.MeterResponse, 0, len(meters))
	for _, m := range meters {
		result = append(result, toMeterResponse(m))
	}
	return result, nil
}

func toMeterResponse(m *entity.Meter) *dto.MeterResponse {
	installedAt := ""
	if m.InstalledAt != nil {
		installedAt = m.InstalledAt.Format("2006-01-02")
	}
	return &dto.MeterResponse{
		ID:          m.ID,
		MeterNo:     m.MeterNo,
		CustomerID:  m.CustomerID,
		InstalledAt: installedAt,
		Status:      m.Status,
	}
}
