package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrCheckOutNotAfter = errors.New("check-out must be after check-in")
)

// Money is an amount in paise, the smallest INR subunit.
type Money struct {
	paise int64
}

func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

func NewMoneyFromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: paise}, nil
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

// Display renders the amount the way it is shown on invoices, e.g. "1500.00".
func (m Money) Display() string {
	return fmt.Sprintf("%d.%02d", m.paise/100, m.paise%100)
}

func (m Money) Mul(n int64) Money {
	return Money{paise: m.paise * n}
}

// StayPeriod is the requested check-in/check-out date pair. Whether the order
// of the two dates is enforced is a policy decision, so the constructor takes
// it as a flag; the original system never validated it.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time, requireOrder bool) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if requireOrder && !checkOut.After(checkIn) {
		return StayPeriod{}, ErrCheckOutNotAfter
	}

	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights reports the stay length in nights, never less than one so that a
// degenerate period still prices a single night.
func (p StayPeriod) Nights() int64 {
	nights := int64(p.checkOut.Sub(p.checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
