/*
Package ledger provides the append-only transaction ledger.

PURPOSE:
  The Ledger is the immutable record of every sale the station processes.
  It owns a growable in-memory store and keeps four aggregate projections
  (fuel-wise, pump-wise, hour-wise, payment-mode-wise) in lockstep with
  every append, so reporting never re-scans history.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: No Update, No Delete. EVER.
  2. IMMUTABLE: Once recorded, a transaction's fields never change
  3. EXACTLY-ONCE AGGREGATION: Every record lands in exactly one bucket
     per dimension - no double counting, no omission
  4. ORDERED: Insertion order equals chronological creation order
  5. MONOTONIC IDS: The id sequence strictly increases for the lifetime
     of the process; ids are never reused, even across failed appends

CAPACITY POLICY:
  The store starts with a small preallocated capacity. When full, capacity
  is doubled; if the doubling allocation fails, a smaller fixed increment
  is tried once; if that also fails, Record reports ErrStorageExhausted
  and leaves the ledger exactly as it was. Growth never loses previously
  stored entries, and new capacity is zero-valued before use.

PRECONDITIONS:
  Record does not re-validate business rules. The sale processor validates
  quantity, amount, pump status, and stock before handing over a candidate.

CONCURRENCY:
  One logical writer. A single exclusive lock serializes Record; List and
  the snapshot accessors take a read lock and copy out, so readers never
  observe a half-grown store.

SEE ALSO:
  - aggregates.go: the four projections and their snapshot accessors
  - id.go: transaction id format
*/
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// TRANSACTION - One recorded sale
// =============================================================================

// Transaction is a single recorded sale. Immutable once recorded.
// Fuel, pump, vehicle, and payment tags are opaque to the ledger;
// validation is the caller's responsibility.
type Transaction struct {
	ID        string
	Timestamp time.Time
	PumpID    int
	Fuel      station.FuelType
	Vehicle   station.VehicleType
	Payment   station.PaymentMode
	Quantity  decimal.Decimal
	Amount    decimal.Decimal
}

// =============================================================================
// LEDGER
// =============================================================================

const (
	// InitialCapacity is the preallocated record count for a new ledger.
	InitialCapacity = 50

	// FallbackIncrement is the smaller growth step tried when doubling fails.
	FallbackIncrement = 50
)

// allocFunc allocates a zero-valued record block of size n.
// Injectable so tests can simulate allocation exhaustion.
type allocFunc func(n int) ([]Transaction, error)

func defaultAlloc(n int) ([]Transaction, error) {
	return make([]Transaction, n), nil
}

// Ledger is the append-only record store plus its aggregate projections.
// The zero value is not usable; construct with New or NewWithCapacity.
type Ledger struct {
	mu sync.RWMutex

	// records is the allocated block: len(records) is capacity, the first
	// length entries are live, the rest are zero-valued.
	records []Transaction
	length  int

	// sequence strictly increases per recorded transaction and never
	// resets within a process lifetime.
	sequence uint64

	now   func() time.Time
	alloc allocFunc

	fuelWise    map[station.FuelType]Totals
	pumpWise    map[int]PumpTotals
	hourWise    [24]Totals
	paymentWise map[station.PaymentMode]decimal.Decimal
}

// New creates a ledger with the standard initial capacity.
func New() *Ledger {
	return NewWithCapacity(InitialCapacity)
}

// NewWithCapacity creates a ledger with an explicit initial capacity.
func NewWithCapacity(capacity int) *Ledger {
	if capacity < 1 {
		capacity = 1
	}
	records, _ := defaultAlloc(capacity)
	return &Ledger{
		records:     records,
		now:         time.Now,
		alloc:       defaultAlloc,
		fuelWise:    make(map[station.FuelType]Totals),
		pumpWise:    make(map[int]PumpTotals),
		paymentWise: make(map[station.PaymentMode]decimal.Decimal),
	}
}

// =============================================================================
// RECORD - The sole mutation entry point
// =============================================================================

// Record assigns an id and timestamp to the candidate, appends it, and
// updates all four aggregates in the same logical step. It returns the
// exact stored record so the caller can render a receipt immediately.
//
// If the candidate carries a timestamp it is kept; otherwise the current
// wall-clock time is used. Either way the hour bucket comes from the
// stored timestamp.
//
// The only failure mode is storage exhaustion during growth, in which
// case the ledger is left exactly as it was before the call.
func (l *Ledger) Record(candidate Transaction) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Grow before touching any state so a failed growth has no effect.
	if err := l.ensureCapacity(); err != nil {
		return Transaction{}, err
	}

	ts := candidate.Timestamp
	if ts.IsZero() {
		ts = l.now()
	}

	l.sequence++
	tx := candidate
	tx.Timestamp = ts
	tx.ID = FormatID(ts, l.sequence)

	l.records[l.length] = tx
	l.length++
	l.applyAggregates(tx)

	return tx, nil
}

// ensureCapacity grows the record block when full: double, then fall back
// to a fixed increment, then give up. Previously stored entries are copied
// into the new block; the region beyond the old capacity is zero-valued
// (fresh allocation, never a resliced view of old memory).
func (l *Ledger) ensureCapacity() error {
	capacity := len(l.records)
	if l.length < capacity {
		return nil
	}

	newCapacity := capacity * 2
	if newCapacity == 0 {
		newCapacity = InitialCapacity
	}
	block, err := l.alloc(newCapacity)
	if err != nil {
		// Doubling failed: try the smaller increment once.
		newCapacity = capacity + FallbackIncrement
		block, err = l.alloc(newCapacity)
		if err != nil {
			return &StorageExhaustedError{Capacity: capacity, Requested: newCapacity}
		}
	}

	copy(block, l.records[:l.length])
	l.records = block
	return nil
}

// =============================================================================
// READS
// =============================================================================

// List returns all transactions, most recent first. Each call returns an
// independent copy; reading never mutates the store or the aggregates.
func (l *Ledger) List() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Transaction, l.length)
	for i := 0; i < l.length; i++ {
		out[i] = l.records[l.length-1-i]
	}
	return out
}

// At returns the i-th transaction in insertion order.
func (l *Ledger) At(i int) (Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= l.length {
		return Transaction{}, false
	}
	return l.records[i], true
}

// Len returns the logical length (number of recorded transactions).
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.length
}

// Cap returns the allocated capacity.
func (l *Ledger) Cap() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
