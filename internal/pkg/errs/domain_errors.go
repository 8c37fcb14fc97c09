package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidStayPeriod = errors.New("invalid stay period")

	// Payment gateway errors
	ErrGatewayConfig    = errors.New("gateway authentication failed")
	ErrGatewayTransport = errors.New("gateway request failed")
	ErrSignatureInvalid = errors.New("payment signature verification failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
