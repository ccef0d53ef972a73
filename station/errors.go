/*
errors.go - Centralized error types for station state

PURPOSE:
  All station-level errors in one place for consistency and discoverability.
  Callers check categories with errors.Is and pull details with errors.As.

ERROR CATEGORIES:
  1. Lookup errors - unknown fuel / pump
  2. Stock errors - insufficient inventory for a deduction
  3. Input errors - non-positive quantities

SEE ALSO:
  - inventory.go: Uses ErrInsufficientStock via InsufficientStockError
  - pumps.go: Uses ErrPumpNotFound
*/
package station

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownFuel is returned when a fuel type is not in the closed set.
	ErrUnknownFuel = errors.New("unknown fuel type")

	// ErrPumpNotFound is returned when a pump id is not registered.
	ErrPumpNotFound = errors.New("pump not found")

	// ErrInsufficientStock is returned when a deduction exceeds current stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNonPositiveQuantity is returned for zero or negative quantities.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InsufficientStockError provides details about a stock shortage.
type InsufficientStockError struct {
	Fuel      FuelType
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient %s stock: available %s, requested %s",
		e.Fuel.Name(), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
