package ledger

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrStorageExhausted is returned when capacity growth failed even after
// the fallback increment. Record-keeping cannot continue without ledger
// storage, so callers should treat this as unrecoverable and end the
// session rather than retry.
var ErrStorageExhausted = errors.New("ledger storage exhausted")

// StorageExhaustedError carries the capacities involved in a failed growth.
type StorageExhaustedError struct {
	Capacity  int // capacity at the time of the failed append
	Requested int // last capacity the ledger tried to allocate
}

func (e *StorageExhaustedError) Error() string {
	return fmt.Sprintf("ledger storage exhausted: capacity %d, could not grow to %d",
		e.Capacity, e.Requested)
}

func (e *StorageExhaustedError) Unwrap() error {
	return ErrStorageExhausted
}
