package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the authenticated user may not perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrStateConflict indicates an invalid invoice lifecycle transition,
// e.g. cancelling an already-cancelled invoice or returning more than the
// returnable remainder.
var ErrStateConflict = errors.New("invalid state transition")

// ErrUnderpayment indicates a payment split that does not cover the amount due.
var ErrUnderpayment = errors.New("payment allocation does not cover amount due")

// ErrOverpayNotConfirmed indicates a payment split exceeding the amount due
// without the caller confirming the excess should become party advance.
var ErrOverpayNotConfirmed = errors.New("overpayment requires confirmation")

// ErrCustomerRequired indicates advance or credit was used on a bill with no
// party selected; anonymous walk-ins pay in full.
var ErrCustomerRequired = errors.New("customer selection required for credit or advance")

// ErrBackendUnavailable indicates a transient persistence failure; the whole
// operation may be retried as a unit.
var ErrBackendUnavailable = errors.New("backend temporarily unavailable")

// ErrInsufficientStock is the sentinel matched by errors.Is for stock failures.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports a stock check failure for one SKU at the
// moment of invoice completion. It wraps ErrInsufficientStock so callers can
// match with errors.Is while still reading the amounts.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   decimal.Decimal
	Required    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %s, required %s",
		e.ProductName, e.Available.String(), e.Required.String())
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
