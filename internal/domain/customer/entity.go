package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is the identity record attached to bookings. Email is the lookup
// key but is deliberately not unique: the store keeps whatever names arrive
// with each booking attempt, and lookups take the oldest match.
type Customer struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     Email
	phone     string
	createdAt time.Time
}

func NewCustomer(firstName, lastName string, email Email, phone string) *Customer {
	return &Customer{
		id:        uuid.New(),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     email,
		phone:     strings.TrimSpace(phone),
	}
}

func ReconstructCustomer(id uuid.UUID, firstName, lastName string, email Email, phone string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
