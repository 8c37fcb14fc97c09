package repository

import (
	"context"

	"majestic-manor/internal/domain/customer"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Oldest row first: duplicate customers under one email are possible and the
// earliest one is canonical.
const selectCustomerByEmailSQL = `
SELECT id, first_name, last_name, email, phone, created_at
FROM customers
WHERE email = $1
ORDER BY created_at ASC, id ASC
LIMIT 1`

func (r *CustomerRepository) FindOldestByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, selectCustomerByEmailSQL, email)

	var (
		id                                   uuid.UUID
		firstName, lastName, emailVal, phone string
		createdAt                            pgtype.Timestamptz
	)

	err := row.Scan(&id, &firstName, &lastName, &emailVal, &phone, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}

	parsedEmail, err := customer.NewEmail(emailVal)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt customer email", err)
	}

	return customer.ReconstructCustomer(id, firstName, lastName, parsedEmail, phone, createdAt.Time), nil
}

const insertCustomerSQL = `
INSERT INTO customers (id, first_name, last_name, email, phone)
VALUES ($1, $2, $3, $4, $5)`

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx, insertCustomerSQL,
		c.ID(),
		c.FirstName(),
		c.LastName(),
		c.Email().Value(),
		c.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err, classifyPgError(err))
	}
	return nil
}
