/*
inventory.go - Per-fuel stock levels

PURPOSE:
  Tracks opening and current stock for each fuel type. Mutated by supply
  additions and sale deductions; read by the sale processor's validation
  step and by reporting.

INVARIANTS:
  1. Current stock never goes negative - Deduct fails instead
  2. Opening stock is fixed at construction and never changes
  3. The low-stock signal is a pure read-side computation

CONCURRENCY:
  Guarded by an RWMutex so the HTTP layer can read stock levels while a
  sale is being processed. The sale processor holds its own lock across
  validate-deduct-record, so deductions are serialized.
*/
package station

import (
	"sync"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INVENTORY
// =============================================================================

// Inventory holds stock levels for the closed set of fuel types.
// Constructed once at startup; lives for the process lifetime.
type Inventory struct {
	mu      sync.RWMutex
	opening map[FuelType]decimal.Decimal
	current map[FuelType]decimal.Decimal

	// Stock below this level triggers a low-stock alert.
	lowStockThreshold decimal.Decimal
}

// StockLevel is a read-only view of one fuel's inventory.
type StockLevel struct {
	Fuel     FuelType
	Opening  decimal.Decimal
	Current  decimal.Decimal
	LowStock bool
}

// DefaultOpeningStock returns the standard opening quantities:
// 50000 L petrol, 50000 L diesel, 20000 kg CNG.
func DefaultOpeningStock() map[FuelType]decimal.Decimal {
	return map[FuelType]decimal.Decimal{
		FuelPetrol: decimal.NewFromInt(50000),
		FuelDiesel: decimal.NewFromInt(50000),
		FuelCNG:    decimal.NewFromInt(20000),
	}
}

// DefaultLowStockThreshold is the alert level shared by all fuels.
var DefaultLowStockThreshold = decimal.NewFromInt(5000)

// NewInventory creates an inventory with the given opening stock.
// Current stock starts equal to opening stock.
func NewInventory(opening map[FuelType]decimal.Decimal, lowStockThreshold decimal.Decimal) *Inventory {
	inv := &Inventory{
		opening:           make(map[FuelType]decimal.Decimal, len(opening)),
		current:           make(map[FuelType]decimal.Decimal, len(opening)),
		lowStockThreshold: lowStockThreshold,
	}
	for f, qty := range opening {
		inv.opening[f] = qty
		inv.current[f] = qty
	}
	return inv
}

// NewDefaultInventory creates an inventory with the standard opening stock.
func NewDefaultInventory() *Inventory {
	return NewInventory(DefaultOpeningStock(), DefaultLowStockThreshold)
}

// CurrentStock returns the current stock for a fuel type.
func (inv *Inventory) CurrentStock(f FuelType) (decimal.Decimal, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	qty, ok := inv.current[f]
	if !ok {
		return decimal.Decimal{}, ErrUnknownFuel
	}
	return qty, nil
}

// OpeningStock returns the opening stock for a fuel type.
func (inv *Inventory) OpeningStock(f FuelType) (decimal.Decimal, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	qty, ok := inv.opening[f]
	if !ok {
		return decimal.Decimal{}, ErrUnknownFuel
	}
	return qty, nil
}

// Deduct removes quantity from the fuel's current stock.
// Fails with InsufficientStockError when quantity exceeds current stock.
func (inv *Inventory) Deduct(f FuelType, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrNonPositiveQuantity
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available, ok := inv.current[f]
	if !ok {
		return ErrUnknownFuel
	}
	if quantity.GreaterThan(available) {
		return &InsufficientStockError{Fuel: f, Available: available, Requested: quantity}
	}
	inv.current[f] = available.Sub(quantity)
	return nil
}

// AddSupply adds quantity to the fuel's current stock.
func (inv *Inventory) AddSupply(f FuelType, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrNonPositiveQuantity
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available, ok := inv.current[f]
	if !ok {
		return ErrUnknownFuel
	}
	inv.current[f] = available.Add(quantity)
	return nil
}

// Levels returns a read-only view of every fuel's stock, in display order.
func (inv *Inventory) Levels() []StockLevel {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	levels := make([]StockLevel, 0, len(inv.current))
	for _, f := range AllFuelTypes() {
		current, ok := inv.current[f]
		if !ok {
			continue
		}
		levels = append(levels, StockLevel{
			Fuel:     f,
			Opening:  inv.opening[f],
			Current:  current,
			LowStock: current.LessThan(inv.lowStockThreshold),
		})
	}
	return levels
}

// LowStock returns the fuel types currently below the alert threshold.
func (inv *Inventory) LowStock() []FuelType {
	var low []FuelType
	for _, lvl := range inv.Levels() {
		if lvl.LowStock {
			low = append(low, lvl.Fuel)
		}
	}
	return low
}
