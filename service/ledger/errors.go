package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a referenced product that does not exist.
var ErrNotFound = errors.New("produto não encontrado")

// InsufficientStockError rejects an outbound movement larger than the
// current stock. No mutation happens when it is returned.
type InsufficientStockError struct {
	ProductID uint
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente (disponível: %g)", e.Available)
}

// ValidationError rejects malformed input before any database access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
