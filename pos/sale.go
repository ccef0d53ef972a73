/*
sale.go - Sale validation and recording

PURPOSE:
  Turns a raw SaleRequest into a recorded transaction:
  1. Validate pump exists and is active
  2. Resolve fuel type and unit price from the pump binding
  3. Derive quantity/amount (customer names one, the other is computed)
  4. Check and deduct stock
  5. Hand the candidate to the ledger's Record operation

  The ledger does not re-validate business rules - by the time Record is
  called, quantity and amount are positive, the pump is known and active,
  and stock has been deducted.

SALE MODES:
  ByQuantity: amount = quantity * unit price
  ByAmount:   quantity = amount / unit price, rounded to 3 decimals
              (dispenser resolution); the entered amount is kept as billed

CONCURRENCY:
  The processor holds its own lock across validate-deduct-record so two
  sales cannot both pass the stock check and overdraw the tank.
*/
package pos

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/ledger"
	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrPumpInactive is returned when the selected pump is not dispensing.
	ErrPumpInactive = errors.New("pump is not active")

	// ErrInvalidSale is returned for malformed requests: unknown vehicle or
	// payment tags, or a quantity/amount pair that isn't exactly one
	// positive value.
	ErrInvalidSale = errors.New("invalid sale request")
)

// =============================================================================
// SALE REQUEST
// =============================================================================

// SaleRequest is a raw sale as entered at the counter. Exactly one of
// Quantity or Amount must be positive; the other is derived from the
// pump's fuel price.
type SaleRequest struct {
	PumpID   int
	Vehicle  station.VehicleType
	Payment  station.PaymentMode
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// quantityScale is the dispenser resolution for derived quantities.
const quantityScale = 3

// =============================================================================
// PROCESSOR
// =============================================================================

// Processor validates sales against the station and records them.
type Processor struct {
	mu      sync.Mutex
	station *Station
}

// NewProcessor creates a sale processor bound to a station.
func NewProcessor(st *Station) *Processor {
	return &Processor{station: st}
}

// ProcessSale validates the request, deducts stock, and records the sale.
// On success it returns the exact stored transaction, ready for a receipt.
func (p *Processor) ProcessSale(req SaleRequest) (ledger.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !req.Vehicle.Valid() || !req.Payment.Valid() {
		return ledger.Transaction{}, ErrInvalidSale
	}
	if req.Quantity.IsPositive() == req.Amount.IsPositive() {
		return ledger.Transaction{}, ErrInvalidSale
	}

	status, err := p.station.Pumps.StatusOf(req.PumpID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	if status != station.PumpActive {
		return ledger.Transaction{}, ErrPumpInactive
	}

	fuel, err := p.station.Pumps.FuelTypeOf(req.PumpID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	price, err := p.station.Prices.PriceOf(fuel)
	if err != nil {
		return ledger.Transaction{}, err
	}

	quantity, amount := req.Quantity, req.Amount
	if quantity.IsPositive() {
		amount = quantity.Mul(price)
	} else {
		quantity = amount.DivRound(price, quantityScale)
	}

	if err := p.station.Inventory.Deduct(fuel, quantity); err != nil {
		return ledger.Transaction{}, err
	}

	recorded, err := p.station.Ledger.Record(ledger.Transaction{
		PumpID:   req.PumpID,
		Fuel:     fuel,
		Vehicle:  req.Vehicle,
		Payment:  req.Payment,
		Quantity: quantity,
		Amount:   amount,
	})
	if err != nil {
		// Storage exhaustion: the sale did not happen, so the fuel was
		// not dispensed. Put the deduction back before reporting.
		_ = p.station.Inventory.AddSupply(fuel, quantity)
		return ledger.Transaction{}, err
	}

	return recorded, nil
}
