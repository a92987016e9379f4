package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
	"github.com/jhoicas/Acueducto-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo suscriptor.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, account_no, name, address, phone, email, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.AccountNo, customer.Name, customer.Address,
		customer.Phone, customer.Email, customer.Balance, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un suscriptor por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, account_no, name, address, phone, email, balance, created_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.AccountNo, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Balance, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// LastAccountNo devuelve el número de cuenta más alto ("" si la tabla está vacía).
func (r *CustomerRepo) LastAccountNo() (string, error) {
	var accountNo string
	err := r.q.QueryRow(context.Background(),
		`SELECT account_no FROM customers ORDER BY account_no DESC LIMIT 1`,
	).Scan(&accountNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last account_no: %w", err)
	}
	return accountNo, nil
}

// List lista suscriptores con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, account_no, name, address, phone, email, balance, created_at
		FROM customers ORDER BY account_no LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Search busca por nombre, número de cuenta o número de medidor (ILIKE).
func (r *CustomerRepo) Search(q string) ([]*entity.Customer, error) {
	query := `
		SELECT DISTINCT c.id, c.account_no, c.name, c.address, c.phone, c.email, c.balance, c.created_at
		FROM customers c
		LEFT JOIN meters m ON m.customer_id = c.id
		WHERE c.name ILIKE $1 OR c.account_no ILIKE $1 OR m.meter_no ILIKE $1
		ORDER BY c.account_no`
	rows, err := r.q.Query(context.Background(), query, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// UpdateBalance fija el saldo del suscriptor.
func (r *CustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET balance = $2 WHERE id = $1`, id, balance,
	)
	if err != nil {
		return fmt.Errorf("update customer balance: %w", err)
	}
	return nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.AccountNo, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Balance, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
