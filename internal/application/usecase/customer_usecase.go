// Package usecase contiene los casos de uso administrativos: suscriptores,
// medidores y comprobantes.
package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para suscriptores. El saldo no se toca
// aquí: lo mueven la liquidación de lecturas y los pagos.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	meterRepo repository.MeterRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, meterRepo repository.MeterRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, meterRepo: meterRepo}
}

// Create crea un suscriptor con número de cuenta consecutivo de 7 dígitos.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	accountNo, err := uc.nextAccountNo()
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		AccountNo: accountNo,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Balance:   decimal.Zero,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un suscriptor por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista suscriptores con paginación.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, toCustomerResponse(c))
	}
	return result, nil
}

// Search busca por nombre, número de cuenta o número de medidor y adjunta
// los medidores de cada suscriptor encontrado.
func (uc *CustomerUseCase) Search(q string) ([]*dto.CustomerSearchResult, error) {
	if q == "" {
		return []*dto.CustomerSearchResult{}, nil
	}
	customers, err := uc.repo.Search(q)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CustomerSearchResult, 0, len(customers))
	for _, c := range customers {
		meters, err := uc.meterRepo.ListByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		meterNos := make([]string, 0, len(meters))
		for _, m := range meters {
			meterNos = append(meterNos, m.MeterNo)
		}
		result = append(result, &dto.CustomerSearchResult{
			CustomerResponse: *toCustomerResponse(c),
			Meters:           meterNos,
		})
	}
	return result, nil
}

// nextAccountNo genera el siguiente consecutivo de cuenta (7 dígitos con ceros
// a la izquierda, arranca en 0000001).
func (uc *CustomerUseCase) nextAccountNo() (string, error) {
	last, err := uc.repo.LastAccountNo()
	if err != nil {
		return "", err
	}
	n := 0
	if last != "" {
		n, err = strconv.Atoi(last)
		if err != nil {
			return "", fmt.Errorf("número de cuenta corrupto %q: %w", last, err)
		}
	}
	return fmt.Sprintf("%07d", n+1), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		AccountNo: c.AccountNo,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Balance:   c.Balance,
	}
}
