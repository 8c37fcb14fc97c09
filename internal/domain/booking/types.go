package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status is the payment lifecycle stage of a booking.
//
// pending is the only initial state. A processed callback moves it to
// confirmed or failed, both terminal here. cancelled is a valid stored value
// reserved for back-office action; nothing in this service transitions into it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled || s == StatusFailed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
